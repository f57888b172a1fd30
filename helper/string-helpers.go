package helper

import (
	"fmt"
	"strconv"
	"strings"
)

// CsvToStringSliceTrimSpaces splits a CSV string into a slice with leading and
// trailing spaces removed from each token. Empty tokens are dropped.
func CsvToStringSliceTrimSpaces(s string) (retval []string) {
	retval = make([]string, 0)
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" { // if there is a real token...
			retval = append(retval, v)
		}
	}
	return
}

// InterfaceToString converts a slice of interface{} scanned from a SQL row into a slice of strings.
func InterfaceToString(src []interface{}) []string {
	retval := make([]string, len(src), len(src))
	for i, v := range src {
		switch x := v.(type) {
		case float64:
			xInt := int(x)
			xFloat := float64(xInt) // truncate the float.
			if x == xFloat {        // if we can treat this as an integer...
				retval[i] = fmt.Sprint(xInt)
			} else { // else we have an exponent...
				retval[i] = strconv.FormatFloat(x, 'g', -1, 64)
			}
		case []uint8: // lib/pq returns some column types as raw bytes.
			retval[i] = string(x)
		case nil:
			retval[i] = ""
		default:
			retval[i] = fmt.Sprint(v)
		}
	}
	return retval
}

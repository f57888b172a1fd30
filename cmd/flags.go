package cmd

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
)

type cliFlag struct {
	name      string // name of flag
	val       string // default value
	shortHand string // single character name for the flag
	desc      string // description of the flag; the long text
}

type cliFlags map[string]cliFlag

var switches = cliFlags{
	"log-level": cliFlag{name: "log-level", shortHand: "l",
		desc: "Log level: \"error | warn | info | debug\""},
	"output": cliFlag{name: "output", shortHand: "o",
		desc: "Specify \"yaml\" or \"json\" to print the ordered statement plan instead of \n" +
			"executing it. Redirect the output to review or version the generated SQL"},
	"stage-only": cliFlag{name: "stage-only", shortHand: "s",
		desc: "Run the staging COPY statements only and skip the star-schema transformation"},
	"transform-only": cliFlag{name: "transform-only", shortHand: "t",
		desc: "Skip the staging COPY statements and run the star-schema transformation only.\n" +
			"Use after a successful \"load --stage-only\""},
	"skip-s3-check": cliFlag{name: "skip-s3-check", shortHand: "k",
		desc: "Skip the pre-flight listing of the configured S3 locations before COPY"},
	"print-header": cliFlag{name: "print-header", shortHand: "H",
		desc: "Print a header row above each check query result"},
	"dsn": cliFlag{name: "dsn", shortHand: "d",
		desc: "Warehouse connect string of the form: \n" +
			"redshift://<user>:<password>@<host>:<port>/<database>"},
	"host": cliFlag{name: "host", shortHand: "H",
		desc: "Warehouse cluster host name (alternative to --dsn)"},
	"port": cliFlag{name: "port", shortHand: "P",
		desc: "Warehouse cluster port"},
	"database": cliFlag{name: "database", shortHand: "D",
		desc: "Warehouse database name"},
	"user": cliFlag{name: "user", shortHand: "u",
		desc: "Warehouse user name"},
	"password": cliFlag{name: "password", shortHand: "p",
		desc: "Warehouse user password"},
	"role-arn": cliFlag{name: "role-arn", shortHand: "a",
		desc: "AWS IAM role ARN the cluster assumes to read the S3 locations"},
	"region": cliFlag{name: "region", shortHand: "R",
		desc: "AWS S3 bucket region for the source data"},
	"log-data": cliFlag{name: "log-data", shortHand: "e",
		desc: "S3 prefix holding the JSON-line event-log records. Use format: s3://<bucket>/<prefix>"},
	"log-jsonpath": cliFlag{name: "log-jsonpath", shortHand: "j",
		desc: "S3 URL of the jsonpaths spec that maps event-log fields to staging columns"},
	"song-data": cliFlag{name: "song-data", shortHand: "m",
		desc: "S3 prefix holding the JSON-line song-catalog records. Use format: s3://<bucket>/<prefix>"},
}

// getCliFlag returns the cliFlag for name with the supplied default value applied.
func (f *cliFlags) getCliFlag(name string, defaultValue string) cliFlag {
	sw, ok := (*f)[name]
	if !ok {
		fmt.Printf("error fetching CLI flag %q\n", name)
		os.Exit(1)
	}
	if defaultValue != "" {
		sw.val = defaultValue
	}
	return sw
}

// addFlag adds a flag to cobra.Command c, based on the type of targetVar (which must be a pointer).
// The name of the flag is looked up in map, cliFlags.
// The flag is marked as required in Cobra based on the value of required.
// Supply a value for desc2 to append to the existing description found in map cliFlags.
func (f *cliFlags) addFlag(c *cobra.Command, targetVar interface{}, name string, defaultValue string, required bool, desc2 string) {
	v := reflect.ValueOf(targetVar)
	if v.Kind() != reflect.Ptr {
		fmt.Println("error adding flag: targetVar must be a pointer")
		os.Exit(1)
	}
	sw := f.getCliFlag(name, defaultValue)
	desc := sw.desc + desc2
	// Apply the flag.
	switch p := targetVar.(type) {
	case *string:
		c.Flags().StringVarP(p, sw.name, sw.shortHand, sw.val, desc)
	case *bool:
		defaultBool := strings.ToLower(sw.val) == "true"
		c.Flags().BoolVarP(p, sw.name, sw.shortHand, defaultBool, desc)
	default:
		panic("Error: unhandled CLI flag target value type")
	}
	// Optionally mark the flag as mandatory.
	if required { // if the flag is required...
		_ = c.MarkFlagRequired(sw.name)
	}
}

package actions

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/richimp95/Project-Sparkify-AWS/warehouse"
)

// exportPlan prints the ordered statement plan to STDOUT without executing it.
// Supported formats are yaml and json.
func exportPlan(format string, plan warehouse.Plan) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling plan to JSON: %v", err)
		}
		fmt.Println(string(b))
	case "yaml":
		b, err := yaml.Marshal(plan)
		if err != nil {
			return fmt.Errorf("error marshalling plan to YAML: %v", err)
		}
		fmt.Println(string(b))
	default:
		return fmt.Errorf("unsupported export format %q - use yaml or json", format)
	}
	return nil
}

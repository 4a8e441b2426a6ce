package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/prototypes/pkg/types"
)

// writeOutput renders v in the selected format. YAML output is converted
// from the JSON encoding so both formats share field names and key order.
func writeOutput(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	switch format {
	case "", types.FormatJSON:
		_, err = fmt.Fprintln(w, string(data))
		return err
	case types.FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("converting to yaml: %w", err)
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("writing yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, types.ErrFormatUnknown)
	}
}

// blockStyle drops the flow and quoting styles the JSON source gave node.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}

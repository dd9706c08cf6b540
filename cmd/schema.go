package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/tfcraft/assetgen/api"
)

var schemaOut string

// schemaDocs lists the emitted file formats that get a schema document.
var schemaDocs = []struct {
	file  string
	typ   reflect.Type
	title string
	desc  string
}{
	{
		file:  "blockstate.schema.json",
		typ:   reflect.TypeOf(api.BlockstateDoc{}),
		title: "Blockstate Descriptor",
		desc:  "Generated blockstates/<path>.json file: defaults plus per-state rendering overrides.",
	},
	{
		file:  "model.schema.json",
		typ:   reflect.TypeOf(api.ModelDoc{}),
		title: "Model Descriptor",
		desc:  "Generated models/<path>.json file: parent reference plus optional texture mapping.",
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON Schema documents for the generated file formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reflector := jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			DoNotReference:             true,
		}

		for _, doc := range schemaDocs {
			schema := reflector.ReflectFromType(doc.typ)
			schema.Title = doc.title
			schema.Description = doc.desc

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal %s: %w", doc.file, err)
			}
			data = append(data, '\n')

			out := filepath.Join(schemaOut, doc.file)
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("create schema output dir: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "schema: wrote %s\n", out)
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOut, "out", filepath.Join("docs", "format"), "Output directory for schema files")
	rootCmd.AddCommand(schemaCmd)
}

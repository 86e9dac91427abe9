package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/schema"
)

var schemaDir string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect record schemas",
	Long: `Inspect the schemas records are evaluated against.

Available commands:
  list     List the builtin and project schema kinds
  show     Print a schema tree with the tier of every leaf
  resolve  Show which schema field a record field name maps to

Examples:
  metaqa schema show study
  metaqa schema resolve datafile title --schemas ./schemas`,
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available schema kinds",
	Args:  cobra.NoArgs,
	RunE:  runSchemaList,
}

var schemaShowCmd = &cobra.Command{
	Use:   "show <kind>",
	Short: "Print a schema tree with tiers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemaShow,
}

var schemaResolveCmd = &cobra.Command{
	Use:   "resolve <kind> <field>",
	Short: "Resolve a record field name to its schema path and tier",
	Args:  cobra.ExactArgs(2),
	RunE:  runSchemaResolve,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaListCmd, schemaShowCmd, schemaResolveCmd)
	schemaCmd.PersistentFlags().StringVar(&schemaDir, "schemas", "", "Directory of <kind>.yaml schemas overriding the builtin ones")
}

func schemas() *schema.FileProvider {
	if schemaDir == "" {
		return schema.Builtin()
	}
	return schema.NewFileProvider(files.NewOSProvider(), schemaDir, schema.Builtin())
}

func runSchemaList(cmd *cobra.Command, args []string) error {
	kinds, err := schema.Builtin().Kinds()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, k := range kinds {
		fmt.Fprintf(out, "%s (builtin)\n", k)
	}
	if schemaDir == "" {
		return nil
	}

	own, err := schemas().Kinds()
	if err != nil {
		return err
	}
	for _, k := range own {
		fmt.Fprintf(out, "%s (%s)\n", k, schemaDir)
	}
	return nil
}

func runSchemaShow(cmd *cobra.Command, args []string) error {
	s, err := schemas().Schema(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if s.Version != "" {
		fmt.Fprintf(out, "%s (version %s)\n", s.Kind, s.Version)
	} else {
		fmt.Fprintln(out, s.Kind)
	}
	printFields(out, s.Fields, 1)
	return nil
}

func printFields(w io.Writer, fields []*schema.Field, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		if !f.IsContainer() {
			fmt.Fprintf(w, "%s%s [%s]\n", indent, f.Name, f.Tier)
			continue
		}
		if f.Repeatable {
			fmt.Fprintf(w, "%s%s (repeatable)\n", indent, f.Name)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, f.Name)
		}
		printFields(w, f.Fields, depth+1)
	}
}

func runSchemaResolve(cmd *cobra.Command, args []string) error {
	s, err := schemas().Schema(args[0])
	if err != nil {
		return err
	}
	c := schema.NewClassifier(s)

	out := cmd.OutOrStdout()
	p, ok := c.Canonical(args[1])
	if !ok {
		fmt.Fprintf(out, "%s: not governed by %s\n", args[1], s.Kind)
		return nil
	}
	tier, _ := c.Classify(args[1])
	fmt.Fprintf(out, "%s %s\n", p, tier)
	return nil
}

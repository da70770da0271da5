package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/statpick/internal/catalog"
	"github.com/abhisek/statpick/internal/console"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the statistical tests statpick can recommend",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tests (optionally filtered by family)",
	RunE: func(cmd *cobra.Command, args []string) error {
		family, _ := cmd.Flags().GetString("family")
		output, _ := cmd.Flags().GetString("output")

		records := rt.catalog.All()
		if family != "" {
			f := catalog.Family(family)
			if !f.Valid() {
				return fmt.Errorf("unknown family %q (use %s or %s)",
					family, catalog.Parametric, catalog.NonParametric)
			}
			records = rt.catalog.ByFamily(f)
		}

		w := cmd.OutOrStdout()
		switch output {
		case "table":
			if err := console.WriteTable(w, records); err != nil {
				return err
			}
			fmt.Fprintf(w, "\n%d tests\n", len(records))
			return nil
		case "yaml":
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(records); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			return enc.Close()
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("unknown output %q (use table, yaml or json)", output)
		}
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <test-id>",
	Short: "Show one test with its assumptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := rt.catalog.Lookup(catalog.ID(args[0]))
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("no test %q; run 'statpick catalog list' for the ids", args[0])
		}
		if err != nil {
			return err
		}

		md := console.RecordMarkdown(rec, rt.catalog.FamilyName(rec.Family), rt.catalog.Locale())
		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			_, err := fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		}
		return writeMarkdown(cmd.OutOrStdout(), md)
	},
}

func init() {
	catalogListCmd.Flags().String("family", "", "Filter by family (parametric, nonparametric)")
	catalogListCmd.Flags().StringP("output", "o", "table", "Output format (table, yaml, json)")
	catalogShowCmd.Flags().Bool("plain", false, "Print raw Markdown even on a terminal")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/career-buddy/internal/career"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the domains with their careers and the matching rules",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeCatalog(cmd.OutOrStdout(), career.DefaultCategories(), career.Default())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func writeCatalog(w io.Writer, categories career.CategoryTable, engine *career.Engine) error {
	var b strings.Builder

	b.WriteString("Domains:\n")
	for _, domain := range career.Domains() {
		careers, _ := categories.Lookup(domain)
		fmt.Fprintf(&b, "  %s: %s\n", domain, strings.Join(careers, ", "))
	}

	b.WriteString("\nRules (in evaluation order):\n")
	for _, rule := range engine.Rules() {
		indent := "  "
		if strings.Contains(rule, ".") {
			indent = "    "
		}
		fmt.Fprintf(&b, "%s%s\n", indent, rule)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

package commands

import (
	"resultsdb/internal/regno"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(countCmd)
}

var countCmd = &cobra.Command{
	Use:         "count",
	Short:       "Prints how many registration numbers and pages the configured ranges cover.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoDB: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		r := cfg.Ranges

		t := newTable()
		t.AppendHeader(table.Row{"Year", "Sections", "Semesters", "Reg Nos", "Pages"})
		for _, b := range r.Batches {
			t.AppendRow(table.Row{b.Year, b.Sections, b.Semesters, b.Sections * r.Rolls, b.Sections * r.Rolls * b.Semesters})
		}
		t.AppendFooter(table.Row{"", "", "Total", regno.Count(r), regno.PairCount(r)})
		t.Render()
	},
}

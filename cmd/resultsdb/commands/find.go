package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var minScore float64

func init() {
	findCmd.Flags().Float64Var(&minScore, "min-score", 0.85, "The minimum Jaro-Winkler similarity of a match.")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <name...>",
	Short: "Finds stored students with a name similar to the one given.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		matches, err := s.SearchStudents(cmd.Context(), strings.Join(args, " "), minScore)
		if err != nil {
			return fmt.Errorf("failed to search students: %w", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Score", "Reg No", "Name", "Semester"})
		for _, m := range matches {
			t.AppendRow(table.Row{fmt.Sprintf("%.3f", m.Score), m.Student.RegNo, m.Student.Name, m.Student.Semester})
		}
		t.Render()
		return nil
	},
}

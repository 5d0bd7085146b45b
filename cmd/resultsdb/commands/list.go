package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every stored student.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		students, err := s.ListStudents(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list students: %w", err)
		}
		counts, err := s.Counts(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to count records: %w", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Reg No", "Name", "Course", "Branch", "Semester"})
		for _, st := range students {
			t.AppendRow(table.Row{st.RegNo, st.Name, st.Course, st.Branch, st.Semester})
		}
		t.AppendFooter(table.Row{"", "", "", "Total", len(students)})
		t.Render()

		fmt.Printf("%d subject results, %d gpa records stored\n", counts.SubjectResults, counts.GpaRecords)
		return nil
	},
}

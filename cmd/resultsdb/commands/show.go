package commands

import (
	"errors"
	"fmt"
	"resultsdb/internal/store"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <regno>",
	Short: "Shows the stored grades of a registration number by semester.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		transcript, err := st.GetTranscript(cmd.Context(), args[0])
		if errors.Is(err, store.ErrNotFound) {
			fmt.Printf("nothing stored for %s\n", args[0])
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get transcript: %w", err)
		}

		s := transcript.Student
		if s.RegNo != "" {
			fmt.Printf("%s  %s\n%s, %s (semester %s)\n", s.RegNo, s.Name, s.Course, s.Branch, s.Semester)
		}

		for _, sem := range transcript.Semesters {
			t := newTable()
			t.SetTitle(fmt.Sprintf("Semester %s", sem.Semester))
			t.AppendHeader(table.Row{"Code", "Subject", "Credits", "Grade"})
			for _, sub := range sem.Subjects {
				t.AppendRow(table.Row{sub.Code, sub.Subject, sub.Credits, sub.Grade})
			}
			t.AppendFooter(table.Row{"GPA", sem.Gpa.GPA, "CGPA", sem.Gpa.CGPA})
			t.Render()
		}
		return nil
	},
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the notes root and graph",
	Long: `Report whether the notes root exists, how many notes it holds and whether
a graph document has been written.

Examples:
  exom doctor
  exom doctor --notes-root ~/notes --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		report, err := service.Doctor(ctx,
			stringFlag(cmd, "notes-root", cfg.NotesRoot),
			stringFlag(cmd, "graph", cfg.GraphPath()))
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return printJSON(report)
		}
		for _, c := range report.Checks {
			status := "WARN"
			if c.OK {
				status = "OK"
			}
			fmt.Printf("%s | %s | %s\n", status, c.Name, c.Info)
		}
		if report.OK {
			fmt.Println("DOCTOR_OK")
		} else {
			fmt.Println("DOCTOR_WARN")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().String("notes-root", "", "root folder containing the category folders (default from config)")
	doctorCmd.Flags().String("graph", "", "graph document (default <out_root>/graph.json)")
	doctorCmd.Flags().Bool("json", false, "output JSON")
}

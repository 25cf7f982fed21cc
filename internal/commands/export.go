package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the time ledger to an XLSX workbook",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = export.DefaultFilename(time.Now())
		}

		entries := s.TimeEntries()
		if len(entries) == 0 {
			fmt.Println("The ledger is empty - nothing to export")
			return
		}
		if err := export.TimeLedger(out, entries, s, s.HourlyRate()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📄 Wrote %d entries to %s\n", len(entries), out)
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "Output file (default time-ledger-<date>.xlsx)")
}

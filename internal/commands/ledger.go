package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/models"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Manage the time ledger",
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		entries := s.TimeEntries()
		if len(entries) == 0 {
			fmt.Println("The ledger is empty")
			return
		}

		rate := s.HourlyRate()
		fmt.Printf("This week: %s, est. $%.2f at $%.2f/h\n\n",
			formatMinutes(s.WeeklyMinutes()), s.WeeklyEarnings(), rate)

		for _, e := range entries {
			earnings := float64(e.Duration) / 60 * rate
			fmt.Printf("%s  %s — %s ($%.2f)\n",
				e.StartTime.Format("2006-01-02 15:04"),
				s.QuestName(e.QuestID),
				formatMinutes(e.Duration),
				earnings)
			fmt.Printf("   %s\n", e.ID)
		}
	},
}

var ledgerAddCmd = &cobra.Command{
	Use:   "add <quest-id> <minutes>",
	Short: "Log a manual time entry",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		var minutes int
		if _, err := fmt.Sscanf(args[1], "%d", &minutes); err != nil || minutes < 0 {
			fmt.Printf("Error: invalid minutes %q\n", args[1])
			return
		}
		notes, _ := cmd.Flags().GetString("notes")

		end := time.Now()
		start := end.Add(-time.Duration(minutes) * time.Minute)
		entry := models.TimeEntry{
			ID:        models.NewID(),
			QuestID:   args[0],
			StartTime: start,
			EndTime:   &end,
			Duration:  minutes,
			Notes:     notes,
		}
		s.AddTimeEntry(entry)
		fmt.Printf("⏱️  Logged %s against %s\n", formatMinutes(minutes), s.QuestName(args[0]))
	},
}

var ledgerDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a time entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		s.DeleteTimeEntry(args[0])
		fmt.Println("🗑  Deleted (if it existed)")
	},
}

func init() {
	ledgerAddCmd.Flags().StringP("notes", "n", "", "Entry notes")

	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerAddCmd)
	ledgerCmd.AddCommand(ledgerDeleteCmd)
}

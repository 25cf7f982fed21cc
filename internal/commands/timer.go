package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/tui"
)

var timerStartCmd = &cobra.Command{
	Use:   "start <quest-id>",
	Short: "Start tracking time on a quest",
	Long: `Start tracking time on a quest. Opens the live timer view by default;
use --no-ui for a simple start. A timer already running is finalized
into the ledger first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		if _, ok := s.QuestByID(args[0]); !ok {
			fmt.Printf("Quest %s not found\n", args[0])
			return
		}

		entry := s.StartTimer(args[0])

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Started tracking time for %s\n", s.QuestName(entry.QuestID))
			fmt.Printf("Started at: %s\n", entry.StartTime.Format("15:04:05"))
			return
		}

		stopped, err := tui.RunTimer(s, entry)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if stopped != nil {
			fmt.Printf("⏹️  Logged %s against %s\n",
				formatMinutes(stopped.Duration), s.QuestName(stopped.QuestID))
		} else {
			fmt.Println("Timer left running. 'spellbook stop' finalizes it.")
		}
	},
}

var timerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop tracking time",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		entry, ok := s.StopTimer()
		if !ok {
			fmt.Println("No active timer")
			return
		}
		fmt.Printf("⏹️  Stopped tracking time for %s\n", s.QuestName(entry.QuestID))
		fmt.Printf("Logged: %s\n", formatMinutes(entry.Duration))
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current time tracking status",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		timer := s.ActiveTimer()
		if timer == nil {
			fmt.Println("No active timer")
			return
		}
		elapsed := time.Since(timer.StartTime)
		fmt.Printf("⏱️  Currently tracking: %s\n", s.QuestName(timer.QuestID))
		fmt.Printf("Started at: %s\n", timer.StartTime.Format("15:04:05"))
		fmt.Printf("Elapsed time: %s\n", formatDuration(elapsed))
	},
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	return fmt.Sprintf("%.0fs", d.Seconds())
}

func formatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

func init() {
	timerStartCmd.Flags().Bool("no-ui", false, "Start timer without the live view")
}

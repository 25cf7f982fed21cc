package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/models"
	"github.com/Washedglad/electricians-spellbook/internal/store"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Manage quests (jobs)",
}

var questAddCmd = &cobra.Command{
	Use:   "add [client name]",
	Short: "Add a new quest",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()

		location, _ := cmd.Flags().GetString("location")
		address, _ := cmd.Flags().GetString("address")
		notes, _ := cmd.Flags().GetString("notes")
		materials, _ := cmd.Flags().GetStringSlice("materials")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		hours, _ := cmd.Flags().GetFloat64("estimated-hours")

		quest := models.Quest{
			ID:              models.NewID(),
			ClientName:      strings.Join(args, " "),
			Location:        location,
			Address:         address,
			StartDate:       time.Now(),
			Status:          models.QuestActive,
			MaterialsNeeded: materials,
			Notes:           notes,
			EstimatedHours:  hours,
		}
		if phone != "" || email != "" {
			quest.ContactInfo = &models.ContactInfo{Phone: phone, Email: email}
		}
		s.AddQuest(quest)

		fmt.Printf("⚡ Added quest for %s\n", quest.ClientName)
		fmt.Printf("  ID: %s\n", quest.ID)
		if quest.Location != "" {
			fmt.Printf("  Location: %s\n", quest.Location)
		}
	},
}

var questListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quests",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		statusFilter, _ := cmd.Flags().GetString("status")

		quests := s.Quests()
		if len(quests) == 0 {
			fmt.Println("No quests yet. Add one with 'spellbook quest add'.")
			return
		}

		counts := s.QuestCountByStatus()
		fmt.Printf("Quests: %d active, %d brewing, %d completed\n\n",
			counts[models.QuestActive], counts[models.QuestBrewing], counts[models.QuestCompleted])

		for _, q := range quests {
			if statusFilter != "" && !strings.EqualFold(string(q.Status), statusFilter) {
				continue
			}
			marker := statusMarker(q.Status)
			fmt.Printf("%s %s — %s (%s)\n", marker, q.ClientName, q.Location, q.Status)
			fmt.Printf("   %s  started %s\n", q.ID, q.StartDate.Format("2006-01-02"))
		}
	},
}

func statusMarker(status models.QuestStatus) string {
	switch status {
	case models.QuestActive:
		return "⚡"
	case models.QuestBrewing:
		return "🧪"
	case models.QuestCompleted:
		return "✅"
	}
	return "•"
}

var questShowCmd = &cobra.Command{
	Use:   "show <quest-id>",
	Short: "Show quest details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		q, ok := s.QuestByID(args[0])
		if !ok {
			fmt.Printf("Quest %s not found\n", args[0])
			return
		}

		fmt.Printf("%s %s\n", statusMarker(q.Status), q.ClientName)
		fmt.Printf("  Status: %s\n", q.Status)
		fmt.Printf("  Location: %s\n", q.Location)
		if q.Address != "" {
			fmt.Printf("  Address: %s\n", q.Address)
		}
		fmt.Printf("  Started: %s\n", q.StartDate.Format("2006-01-02"))
		if q.CompletionDate != nil {
			fmt.Printf("  Completed: %s\n", q.CompletionDate.Format("2006-01-02"))
		}
		if len(q.MaterialsNeeded) > 0 {
			fmt.Printf("  Materials: %s\n", strings.Join(q.MaterialsNeeded, ", "))
		}
		if q.ContactInfo != nil {
			fmt.Printf("  Contact: %s %s\n", q.ContactInfo.Phone, q.ContactInfo.Email)
		}
		if q.EstimatedHours > 0 {
			fmt.Printf("  Estimated: %.1fh\n", q.EstimatedHours)
		}
		if q.Notes != "" {
			fmt.Printf("  Notes: %s\n", q.Notes)
		}
	},
}

var questStatusCmd = &cobra.Command{
	Use:   "status <quest-id> <Active|Brewing|Completed>",
	Short: "Change a quest's status",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		id := args[0]
		if _, ok := s.QuestByID(id); !ok {
			fmt.Printf("Quest %s not found\n", id)
			return
		}

		var status models.QuestStatus
		switch strings.ToLower(args[1]) {
		case "active":
			status = models.QuestActive
		case "brewing":
			status = models.QuestBrewing
		case "completed":
			status = models.QuestCompleted
		default:
			fmt.Printf("Unknown status %q (use Active, Brewing, or Completed)\n", args[1])
			return
		}

		s.UpdateQuest(id, store.QuestPatch{Status: &status})
		q, _ := s.QuestByID(id)
		fmt.Printf("%s %s is now %s\n", statusMarker(q.Status), q.ClientName, q.Status)
		if q.Status == models.QuestCompleted && q.CompletionDate != nil {
			fmt.Printf("  Completed on %s\n", q.CompletionDate.Format("2006-01-02"))
		}
	},
}

var questDeleteCmd = &cobra.Command{
	Use:   "delete <quest-id>",
	Short: "Delete a quest",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		q, ok := s.QuestByID(args[0])
		if !ok {
			fmt.Printf("Quest %s not found\n", args[0])
			return
		}
		s.DeleteQuest(args[0])
		fmt.Printf("🗑  Deleted quest for %s\n", q.ClientName)
	},
}

func init() {
	questAddCmd.Flags().StringP("location", "l", "", "Job site label")
	questAddCmd.Flags().StringP("address", "a", "", "Street address")
	questAddCmd.Flags().StringP("notes", "n", "", "Free-text notes")
	questAddCmd.Flags().StringSliceP("materials", "m", nil, "Comma-separated materials needed")
	questAddCmd.Flags().String("phone", "", "Client phone")
	questAddCmd.Flags().String("email", "", "Client email")
	questAddCmd.Flags().Float64("estimated-hours", 0, "Estimated hours")

	questListCmd.Flags().StringP("status", "s", "", "Filter by status")

	questCmd.AddCommand(questAddCmd)
	questCmd.AddCommand(questListCmd)
	questCmd.AddCommand(questShowCmd)
	questCmd.AddCommand(questStatusCmd)
	questCmd.AddCommand(questDeleteCmd)
}

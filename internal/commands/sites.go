package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/models"
	"github.com/Washedglad/electricians-spellbook/internal/store"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage job site locations",
}

var sitesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a job site",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()

		address, _ := cmd.Flags().GetString("address")
		contact, _ := cmd.Flags().GetString("contact")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		notes, _ := cmd.Flags().GetString("notes")
		quests, _ := cmd.Flags().GetStringSlice("quests")

		loc := models.JobLocation{
			ID:            models.NewID(),
			Name:          strings.Join(args, " "),
			Address:       address,
			ContactPerson: contact,
			Phone:         phone,
			Email:         email,
			Notes:         notes,
			QuestHistory:  quests,
		}
		s.AddLocation(loc)
		fmt.Printf("🗺  Added site %s\n", loc.Name)
		fmt.Printf("  ID: %s\n", loc.ID)
	},
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job sites",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		locations := s.Locations()
		if len(locations) == 0 {
			fmt.Println("No job sites yet")
			return
		}
		for _, l := range locations {
			fmt.Printf("🗺  %s — %s\n", l.Name, l.Address)
			if l.ContactPerson != "" {
				fmt.Printf("   Contact: %s %s\n", l.ContactPerson, l.Phone)
			}
			if len(l.QuestHistory) > 0 {
				fmt.Printf("   Quests: %d\n", len(l.QuestHistory))
			}
			fmt.Printf("   %s\n", l.ID)
		}
	},
}

var sitesUpdateCmd = &cobra.Command{
	Use:   "update <site-id>",
	Short: "Update a job site",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()

		var patch store.LocationPatch
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			patch.Name = &v
		}
		if cmd.Flags().Changed("address") {
			v, _ := cmd.Flags().GetString("address")
			patch.Address = &v
		}
		if cmd.Flags().Changed("contact") {
			v, _ := cmd.Flags().GetString("contact")
			patch.ContactPerson = &v
		}
		if cmd.Flags().Changed("phone") {
			v, _ := cmd.Flags().GetString("phone")
			patch.Phone = &v
		}
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			patch.Email = &v
		}
		if cmd.Flags().Changed("notes") {
			v, _ := cmd.Flags().GetString("notes")
			patch.Notes = &v
		}
		s.UpdateLocation(args[0], patch)
		fmt.Println("🗺  Updated (if it existed)")
	},
}

var sitesDeleteCmd = &cobra.Command{
	Use:   "delete <site-id>",
	Short: "Delete a job site",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		s.DeleteLocation(args[0])
		fmt.Println("🗑  Deleted (if it existed)")
	},
}

func init() {
	sitesAddCmd.Flags().StringP("address", "a", "", "Street address")
	sitesAddCmd.Flags().StringP("contact", "c", "", "Contact person")
	sitesAddCmd.Flags().String("phone", "", "Contact phone")
	sitesAddCmd.Flags().String("email", "", "Contact email")
	sitesAddCmd.Flags().StringP("notes", "n", "", "Notes")
	sitesAddCmd.Flags().StringSlice("quests", nil, "Associated quest ids")

	sitesUpdateCmd.Flags().String("name", "", "Site name")
	sitesUpdateCmd.Flags().StringP("address", "a", "", "Street address")
	sitesUpdateCmd.Flags().StringP("contact", "c", "", "Contact person")
	sitesUpdateCmd.Flags().String("phone", "", "Contact phone")
	sitesUpdateCmd.Flags().String("email", "", "Contact email")
	sitesUpdateCmd.Flags().StringP("notes", "n", "", "Notes")

	sitesCmd.AddCommand(sitesAddCmd)
	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesUpdateCmd)
	sitesCmd.AddCommand(sitesDeleteCmd)
}

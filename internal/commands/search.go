package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search quests, materials, code references, and sites",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		query := strings.Join(args, " ")
		res := s.Search(query)
		if res.Empty() {
			fmt.Printf("No matches for %q\n", query)
			return
		}

		if len(res.Quests) > 0 {
			fmt.Println("Quests:")
			for _, q := range res.Quests {
				fmt.Printf("  %s %s — %s  [%s]\n", statusMarker(q.Status), q.ClientName, q.Location, q.ID)
			}
		}
		if len(res.Materials) > 0 {
			fmt.Println("Materials:")
			for _, m := range res.Materials {
				fmt.Printf("  📦 %s (%s)  [%s]\n", m.Name, m.Category, m.ID)
			}
		}
		if len(res.CodeReferences) > 0 {
			fmt.Println("Code references:")
			for _, c := range res.CodeReferences {
				fmt.Printf("  📜 %s — %s  [%s]\n", c.Section, c.Title, c.ID)
			}
		}
		if len(res.Locations) > 0 {
			fmt.Println("Sites:")
			for _, l := range res.Locations {
				fmt.Printf("  🗺  %s — %s  [%s]\n", l.Name, l.Address, l.ID)
			}
		}
	},
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/models"
)

var codexCmd = &cobra.Command{
	Use:   "codex",
	Short: "Browse and bookmark code references",
}

var codexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List code references",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		bookmarkedOnly, _ := cmd.Flags().GetBool("bookmarked")

		for _, c := range s.CodeReferences() {
			if bookmarkedOnly && !c.Bookmarked {
				continue
			}
			marker := "  "
			if c.Bookmarked {
				marker = "🔖"
			}
			fmt.Printf("%s %s — %s (%s)  [%s]\n", marker, c.Section, c.Title, c.Category, c.ID)
		}
	},
}

var codexShowCmd = &cobra.Command{
	Use:   "show <code-id>",
	Short: "Show a code reference",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		for _, c := range s.CodeReferences() {
			if c.ID == args[0] || c.Section == args[0] {
				fmt.Printf("NEC %s — %s\n", c.Section, c.Title)
				fmt.Printf("Category: %s\n\n", c.Category)
				fmt.Println(c.Content)
				return
			}
		}
		fmt.Printf("Code reference %s not found\n", args[0])
	},
}

var codexBookmarkCmd = &cobra.Command{
	Use:   "bookmark <code-id>",
	Short: "Toggle a bookmark",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		s.ToggleBookmark(args[0])
		for _, c := range s.CodeReferences() {
			if c.ID == args[0] {
				if c.Bookmarked {
					fmt.Printf("🔖 Bookmarked %s\n", c.Section)
				} else {
					fmt.Printf("Removed bookmark from %s\n", c.Section)
				}
				return
			}
		}
		fmt.Printf("Code reference %s not found\n", args[0])
	},
}

var codexAddCmd = &cobra.Command{
	Use:   "add <section> <title>",
	Short: "Add a code reference",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		content, _ := cmd.Flags().GetString("content")
		category, _ := cmd.Flags().GetString("category")

		c := models.CodeReference{
			ID:       models.NewID(),
			Section:  args[0],
			Title:    strings.Join(args[1:], " "),
			Content:  content,
			Category: models.CodeCategory(category),
		}
		s.AddCodeReference(c)
		fmt.Printf("📜 Added %s — %s\n", c.Section, c.Title)
	},
}

func init() {
	codexListCmd.Flags().BoolP("bookmarked", "b", false, "Only show bookmarks")
	codexAddCmd.Flags().StringP("content", "c", "", "Body text")
	codexAddCmd.Flags().String("category", string(models.CodeGeneral), "Code category")

	codexCmd.AddCommand(codexListCmd)
	codexCmd.AddCommand(codexShowCmd)
	codexCmd.AddCommand(codexBookmarkCmd)
	codexCmd.AddCommand(codexAddCmd)
}

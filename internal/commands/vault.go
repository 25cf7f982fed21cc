package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/models"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage material stock",
}

var vaultAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a material",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()

		category, _ := cmd.Flags().GetString("category")
		quantity, _ := cmd.Flags().GetFloat64("quantity")
		unit, _ := cmd.Flags().GetString("unit")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		notes, _ := cmd.Flags().GetString("notes")

		cat := models.CategoryOther
		for _, c := range models.MaterialCategories {
			if strings.EqualFold(string(c), category) {
				cat = c
				break
			}
		}

		m := models.Material{
			ID:                models.NewID(),
			Name:              strings.Join(args, " "),
			Category:          cat,
			Quantity:          quantity,
			Unit:              unit,
			LowStockThreshold: threshold,
			Notes:             notes,
		}
		s.AddMaterial(m)
		fmt.Printf("📦 Added %s (%s): %s %s\n", m.Name, m.Category, trimFloat(m.Quantity), m.Unit)
		fmt.Printf("  ID: %s\n", m.ID)
	},
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List materials",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		lowOnly, _ := cmd.Flags().GetBool("low")

		materials := s.Materials()
		if len(materials) == 0 {
			fmt.Println("The vault is empty. Add stock with 'spellbook vault add'.")
			return
		}
		if low := s.LowStockMaterials(); len(low) > 0 {
			fmt.Printf("⚠️  %d material(s) low on stock\n\n", len(low))
		}
		for _, m := range materials {
			if lowOnly && !m.LowStock() {
				continue
			}
			marker := "  "
			if m.LowStock() {
				marker = "⚠️ "
			}
			fmt.Printf("%s%s — %s %s (%s)\n", marker, m.Name, trimFloat(m.Quantity), m.Unit, m.Category)
			fmt.Printf("   %s\n", m.ID)
		}
	},
}

var vaultAdjustCmd = &cobra.Command{
	Use:   "adjust <material-id> <delta>",
	Short: "Adjust stock by a signed amount",
	Long:  "Adjust stock by a signed amount. Quantity never goes below zero.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		delta, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Error: invalid amount %q\n", args[1])
			return
		}
		s.AdjustQuantity(args[0], delta)
		for _, m := range s.Materials() {
			if m.ID == args[0] {
				fmt.Printf("📦 %s now at %s %s\n", m.Name, trimFloat(m.Quantity), m.Unit)
				if m.LowStock() {
					fmt.Println("⚠️  Low stock - time to restock!")
				}
				return
			}
		}
		fmt.Printf("Material %s not found\n", args[0])
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <material-id>",
	Short: "Delete a material",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		s.DeleteMaterial(args[0])
		fmt.Println("🗑  Deleted (if it existed)")
	},
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	vaultAddCmd.Flags().StringP("category", "c", "Other", "Material category")
	vaultAddCmd.Flags().Float64P("quantity", "q", 0, "Starting quantity")
	vaultAddCmd.Flags().StringP("unit", "u", "pcs", "Unit of measure")
	vaultAddCmd.Flags().Float64P("threshold", "t", 0, "Low-stock threshold")
	vaultAddCmd.Flags().StringP("notes", "n", "", "Notes")

	vaultListCmd.Flags().Bool("low", false, "Only show low-stock materials")

	vaultCmd.AddCommand(vaultAddCmd)
	vaultCmd.AddCommand(vaultListCmd)
	vaultCmd.AddCommand(vaultAdjustCmd)
	vaultCmd.AddCommand(vaultDeleteCmd)
}

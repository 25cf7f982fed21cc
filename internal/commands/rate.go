package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate [hourly-rate]",
	Short: "Show or set the hourly rate",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		if len(args) == 0 {
			fmt.Printf("Hourly rate: $%.2f\n", s.HourlyRate())
			return
		}
		rate, err := strconv.ParseFloat(args[0], 64)
		if err != nil || rate <= 0 {
			fmt.Printf("Error: invalid rate %q (must be a positive number)\n", args[0])
			return
		}
		s.SetHourlyRate(rate)
		fmt.Printf("💰 Hourly rate set to $%.2f\n", rate)
	},
}

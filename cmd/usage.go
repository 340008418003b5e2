package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// usageCmd represents the usage command
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show API credit usage for the current billing period",
	Args:  cobra.NoArgs,
	RunE:  runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
	result, err := client.GetUsage(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(result)
	}

	period := result.Data.CurrentPeriod
	fmt.Printf("Billing period:    %s to %s\n", period.StartDate, period.EndDate)
	fmt.Printf("Credits used:      %d of %d\n", period.CreditsUsed, period.CreditsLimit)
	fmt.Printf("Credits remaining: %d\n", period.CreditsRemaining)
	fmt.Printf("Requests made:     %d\n", period.RequestsMade)
	fmt.Printf("Usage:             %.1f%%\n", result.Data.UsagePercentage)

	printCredits(result.Meta)
	return nil
}

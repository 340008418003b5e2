package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopsavvy/savvyctl/shopsavvy"
)

var (
	scheduleFrequency string
	scheduleRetailer  string
)

// scheduleCmd groups the monitoring schedule subcommands
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage the product monitoring schedule",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <identifier>...",
	Short: "Add products to the monitoring schedule",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScheduleAdd,
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scheduled products",
	Args:  cobra.NoArgs,
	RunE:  runScheduleList,
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove <identifier>...",
	Short: "Remove products from the monitoring schedule",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScheduleRemove,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleRemoveCmd)

	scheduleAddCmd.Flags().StringVar(&scheduleFrequency, "frequency", "daily", "refresh cadence (hourly, daily or weekly)")
	scheduleAddCmd.Flags().StringVar(&scheduleRetailer, "retailer", "", "only monitor this retailer")
}

func runScheduleAdd(cmd *cobra.Command, args []string) error {
	frequency, err := shopsavvy.ParseFrequency(scheduleFrequency)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if len(args) == 1 {
		result, err := client.ScheduleProductMonitoring(ctx, args[0], frequency, scheduleRetailer)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(result)
		}
		if result.Data.Scheduled {
			fmt.Printf("✓ Scheduled %s (%s, %s)\n", args[0], result.Data.ProductID, frequency)
		} else {
			fmt.Printf("✗ Could not schedule %s\n", args[0])
		}
		printCredits(result.Meta)
		return nil
	}

	result, err := client.ScheduleProductMonitoringBatch(ctx, args, frequency, scheduleRetailer)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(result)
	}
	for _, outcome := range result.Data {
		if outcome.Scheduled {
			fmt.Printf("✓ Scheduled %s (%s)\n", outcome.Identifier, outcome.ProductID)
		} else {
			fmt.Printf("✗ Could not schedule %s\n", outcome.Identifier)
		}
	}
	printCredits(result.Meta)
	return nil
}

func runScheduleList(cmd *cobra.Command, args []string) error {
	result, err := client.GetScheduledProducts(context.Background())
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(result)
	}

	if len(result.Data) == 0 {
		fmt.Println("No products are being monitored.")
		return nil
	}

	fmt.Println(strings.Repeat("━", 100))
	fmt.Printf("%-14s %-24s %-10s %-16s %s\n", "PRODUCT ID", "IDENTIFIER", "FREQUENCY", "RETAILER", "LAST REFRESHED")
	fmt.Println(strings.Repeat("━", 100))
	for _, scheduled := range result.Data {
		fmt.Printf("%-14s %-24s %-10s %-16s %s\n",
			scheduled.ProductID,
			truncate(scheduled.Identifier, 22),
			scheduled.Frequency,
			orDash(scheduled.Retailer),
			orDash(scheduled.LastRefreshed))
	}
	fmt.Println(strings.Repeat("━", 100))
	fmt.Printf("Monitoring %d products\n", len(result.Data))

	printCredits(result.Meta)
	return nil
}

func runScheduleRemove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if len(args) == 1 {
		result, err := client.RemoveProductFromSchedule(ctx, args[0])
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(result)
		}
		if result.Data.Removed {
			fmt.Printf("✓ Removed %s from schedule\n", args[0])
		} else {
			fmt.Printf("✗ %s was not on the schedule\n", args[0])
		}
		printCredits(result.Meta)
		return nil
	}

	result, err := client.RemoveProductsFromSchedule(ctx, args)
	if err != nil {
		return err
	}
	if jsonOutput() {
		return printJSON(result)
	}
	for _, outcome := range result.Data {
		if outcome.Removed {
			fmt.Printf("✓ Removed %s\n", outcome.Identifier)
		} else {
			fmt.Printf("✗ %s was not on the schedule\n", outcome.Identifier)
		}
	}
	printCredits(result.Meta)
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopsavvy/savvyctl/filter"
	"github.com/shopsavvy/savvyctl/shopsavvy"
)

var (
	offersRetailer string
	filterExpr     string
	preset         string
)

// offersCmd represents the offers command
var offersCmd = &cobra.Command{
	Use:   "offers <identifier>...",
	Short: "Show current retailer offers for products",
	Long: `Show the current retailer offers for one or more products.

Offers can be narrowed with a filter expression, for example:

  savvyctl offers 012345678901 --filter 'Price < 50 && inStock()'
  savvyctl offers 012345678901 --preset cheap-in-stock`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOffers,
}

func init() {
	rootCmd.AddCommand(offersCmd)
	offersCmd.Flags().StringVar(&offersRetailer, "retailer", "", "only include offers from this retailer")
	offersCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to offers")
	offersCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// getFilterExpression resolves the --filter and --preset flags
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("cannot use both --filter and --preset")
	}
	if preset != "" {
		expression, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("preset %q not found in config", preset)
		}
		return expression, nil
	}
	return filterExpr, nil
}

func runOffers(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var result *shopsavvy.Response[[]shopsavvy.ProductWithOffers]
	var err error
	if len(args) == 1 {
		result, err = client.GetCurrentOffers(ctx, args[0], offersRetailer, "")
	} else {
		result, err = client.GetCurrentOffersBatch(ctx, args, offersRetailer, "")
	}
	if err != nil {
		return err
	}

	products := result.Data

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression != "" {
		compiled, err := filter.NewExprCompiler().Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Debug().Str("filter", expression).Msg("Filtering offers")
		products, err = filter.MatchOffers(ctx, compiled, products)
		if err != nil {
			return err
		}
	}

	if jsonOutput() {
		return printJSON(products)
	}

	if len(products) == 0 {
		fmt.Println("No offers found.")
		return nil
	}

	for i, product := range products {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%s)\n", product.Title, product.ShopSavvy)
		fmt.Println(strings.Repeat("━", 100))
		fmt.Printf("%-20s %-14s %-14s %-10s %s\n", "RETAILER", "PRICE", "AVAILABILITY", "CONDITION", "SELLER")
		fmt.Println(strings.Repeat("━", 100))
		for _, offer := range product.Offers {
			fmt.Printf("%-20s %-14s %-14s %-10s %s\n",
				truncate(orDash(offer.Retailer), 18),
				formatPrice(offer.Price, offer.Currency),
				orDash(offer.Availability),
				orDash(offer.Condition),
				truncate(orDash(offer.Seller), 30))
		}
		fmt.Println(strings.Repeat("━", 100))
	}

	printCredits(result.Meta)
	return nil
}

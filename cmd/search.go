package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchLimit  int
	searchOffset int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the product catalog by keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "maximum number of results")
	searchCmd.Flags().IntVarP(&searchOffset, "offset", "o", 0, "pagination offset")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	logger.Debug().Str("query", query).Msg("Searching products")

	result, err := client.SearchProducts(context.Background(), query, searchLimit, searchOffset)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(result)
	}

	if len(result.Data) == 0 {
		fmt.Println("No products found.")
		return nil
	}

	fmt.Println(strings.Repeat("━", 100))
	fmt.Printf("%-4s %-50s %-20s %s\n", "#", "TITLE", "BRAND", "ID")
	fmt.Println(strings.Repeat("━", 100))
	for i, product := range result.Data {
		fmt.Printf("%-4d %-50s %-20s %s\n",
			i+1,
			truncate(product.Title, 48),
			truncate(orDash(product.Brand), 18),
			product.ShopSavvy)
	}
	fmt.Println(strings.Repeat("━", 100))

	if p := result.Pagination; p != nil {
		fmt.Printf("Showing %d of %d results (offset %d)\n", p.Returned, p.Total, p.Offset)
	}
	printCredits(result.Meta)
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopsavvy/savvyctl/shopsavvy"
)

var lookupFormat string

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <identifier>...",
	Short: "Look up product details by identifier",
	Long: `Look up product details by barcode, ASIN, product URL, model number or
ShopSavvy product id. Multiple identifiers are sent as one batch request.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().StringVar(&lookupFormat, "format", "", "response format (json or csv)")
}

func parseFormat(s string) (shopsavvy.Format, error) {
	switch shopsavvy.Format(s) {
	case "", shopsavvy.FormatJSON, shopsavvy.FormatCSV:
		return shopsavvy.Format(s), nil
	}
	return "", fmt.Errorf("invalid format %q (must be json or csv)", s)
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(lookupFormat)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var result *shopsavvy.Response[[]shopsavvy.Product]
	if len(args) == 1 {
		result, err = client.GetProductDetails(ctx, args[0], format)
	} else {
		result, err = client.GetProductDetailsBatch(ctx, args, format)
	}
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(result)
	}

	for i, product := range result.Data {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(product.Title)
		fmt.Println(strings.Repeat("─", len(product.Title)))
		fmt.Printf("  ID:       %s\n", product.ShopSavvy)
		fmt.Printf("  Brand:    %s\n", orDash(product.Brand))
		fmt.Printf("  Category: %s\n", orDash(product.Category))
		fmt.Printf("  Barcode:  %s\n", orDash(product.Barcode))
		fmt.Printf("  ASIN:     %s\n", orDash(product.Amazon))
		fmt.Printf("  Model:    %s\n", orDash(product.Model))
		if len(product.Images) > 0 {
			fmt.Printf("  Image:    %s\n", product.Images[0])
		}
	}

	printCredits(result.Meta)
	return nil
}

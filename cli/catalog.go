package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"printverse/domain"
)

func init() {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the product catalog",
	}

	// list
	var lCategory, lSort, lOrder, lOutput string
	var lMin, lMax float64
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			var minPtr, maxPtr *float64
			if cmd.Flags().Changed("min-price") {
				minPtr = &lMin
			}
			if cmd.Flags().Changed("max-price") {
				maxPtr = &lMax
			}
			out, err := shopStore.ProductsFiltered(context.Background(), domain.Filter{
				Category: lCategory,
				MinPrice: minPtr,
				MaxPrice: maxPtr,
				SortBy:   lSort,
				Order:    lOrder,
			})
			if err != nil {
				return err
			}
			if lOutput == "json" {
				b, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, p := range out {
				flags := ""
				if p.IsNew {
					flags += " [new]"
				}
				if p.IsPopular {
					flags += " [popular]"
				}
				if p.IsPromotion {
					flags += " [promo]"
				}
				fmt.Printf("%s | %s | %.2f | %s %s | stock %d | %s%s\n",
					p.ID, p.Name, p.Price, p.Material, p.Color, p.InStock, p.Category, flags)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lCategory, "category", "", "category")
	listCmd.Flags().Float64Var(&lMin, "min-price", 0, "min price")
	listCmd.Flags().Float64Var(&lMax, "max-price", 0, "max price")
	listCmd.Flags().StringVar(&lSort, "sort-by", "", "sort field: name|price|stock")
	listCmd.Flags().StringVar(&lOrder, "order", "asc", "sort order")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	catalogCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product with its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := shopStore.Product(context.Background(), args[0])
			if err != nil {
				if domain.IsNotFound(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	catalogCmd.AddCommand(getCmd)

	// review
	var rName, rComment string
	var rRating int
	reviewCmd := &cobra.Command{
		Use:   "review <productID>",
		Short: "Leave a review on a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := shopStore.AddReview(context.Background(), args[0], domain.Review{
				CustomerName: rName,
				Rating:       rRating,
				Comment:      rComment,
			})
			if err != nil {
				return err
			}
			fmt.Printf("review %s added\n", r.ID)
			return nil
		},
	}
	reviewCmd.Flags().StringVar(&rName, "name", "", "your name")
	reviewCmd.Flags().IntVar(&rRating, "rating", 5, "rating 1-5")
	reviewCmd.Flags().StringVar(&rComment, "comment", "", "comment")
	catalogCmd.AddCommand(reviewCmd)

	rootCmd.AddCommand(catalogCmd)
}

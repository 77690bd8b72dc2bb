package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart with line totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cart, err := shopStore.Cart(ctx)
			if err != nil {
				return err
			}
			if len(cart) == 0 {
				fmt.Println("cart is empty")
				return nil
			}
			var total float64
			for _, line := range cart {
				p, err := shopStore.Product(ctx, line.ProductID)
				if err != nil {
					return err
				}
				lineTotal := p.Price * float64(line.Quantity)
				total += lineTotal
				fmt.Printf("%s | %s | %d x %.2f = %.2f\n",
					line.ProductID, p.Name, line.Quantity, p.Price, lineTotal)
			}
			fmt.Printf("total: %.2f\n", total)
			return nil
		},
	}
	cartCmd.AddCommand(showCmd)

	var addQty int
	addCmd := &cobra.Command{
		Use:   "add <productID>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shopStore.AddToCart(context.Background(), args[0], addQty); err != nil {
				return err
			}
			fmt.Println("added")
			return nil
		},
	}
	addCmd.Flags().IntVar(&addQty, "quantity", 1, "quantity")
	cartCmd.AddCommand(addCmd)

	var updQty int
	updateCmd := &cobra.Command{
		Use:   "update <productID>",
		Short: "Set a cart line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shopStore.UpdateCartItem(context.Background(), args[0], updQty); err != nil {
				return err
			}
			fmt.Println("updated")
			return nil
		},
	}
	updateCmd.Flags().IntVar(&updQty, "quantity", 1, "new quantity")
	cartCmd.AddCommand(updateCmd)

	removeCmd := &cobra.Command{
		Use:   "remove <productID>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shopStore.RemoveFromCart(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("removed")
			return nil
		},
	}
	cartCmd.AddCommand(removeCmd)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shopStore.ClearCart(context.Background()); err != nil {
				return err
			}
			fmt.Println("cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(clearCmd)

	rootCmd.AddCommand(cartCmd)
}

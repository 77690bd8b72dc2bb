package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"printverse/domain"
	"printverse/seed"
)

// oneOf checks a product attribute against the shop's fixed choices.
// An empty value is allowed; the flags are optional.
func oneOf(field, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q (choose from: %s)", field, value, strings.Join(allowed, ", "))
}

// checkAttributes validates material, color and category against the
// enumerations offered by the product form.
func checkAttributes(p domain.Product) error {
	if err := oneOf("material", p.Material, seed.Materials); err != nil {
		return err
	}
	if err := oneOf("color", p.Color, seed.Colors); err != nil {
		return err
	}
	return oneOf("category", p.Category, seed.Categories)
}

func init() {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin console",
	}

	// login
	var username, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the admin console",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := shopStore.ValidateAdmin(context.Background(), username, password)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("invalid credentials")
			}
			if err := session.Login(username); err != nil {
				return err
			}
			slog.Info("admin logged in", "username", username)
			fmt.Println("logged in")
			return nil
		},
	}
	loginCmd.Flags().StringVar(&username, "username", "", "admin username")
	loginCmd.Flags().StringVar(&password, "password", "", "admin password")
	adminCmd.AddCommand(loginCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.Logout(); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
	adminCmd.AddCommand(logoutCmd)

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := session.Verify()
			if err != nil {
				return err
			}
			fmt.Println(user)
			return nil
		},
	}
	adminCmd.AddCommand(whoamiCmd)

	var newPassword string
	passwdCmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the admin password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			return shopStore.SetAdminPassword(context.Background(), newPassword)
		},
	}
	passwdCmd.Flags().StringVar(&newPassword, "new-password", "", "new password")
	adminCmd.AddCommand(passwdCmd)

	rootCmd.AddCommand(adminCmd)

	// product management (admin gated)
	productCmd := &cobra.Command{
		Use:   "product",
		Short: "Manage catalog products (admin)",
	}

	var p domain.Product
	var genID bool
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if err := checkAttributes(p); err != nil {
				return err
			}
			if genID || p.ID == "" {
				p.ID = uuid.NewString()
			}
			start := time.Now()
			if err := shopStore.AddProduct(context.Background(), p); err != nil {
				slog.Error("product add failed", "product_id", p.ID, "error", err)
				return err
			}
			slog.Info("product added", "product_id", p.ID, "duration_ms", time.Since(start).Milliseconds())
			b, _ := json.MarshalIndent(p, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	addCmd.Flags().StringVar(&p.ID, "id", "", "product id (generated when empty)")
	addCmd.Flags().StringVar(&p.Name, "name", "", "name")
	addCmd.Flags().StringVar(&p.Description, "description", "", "description")
	addCmd.Flags().Float64Var(&p.Price, "price", 0, "price")
	addCmd.Flags().StringSliceVar(&p.Images, "image", nil, "image path (repeatable)")
	addCmd.Flags().StringVar(&p.Material, "material", "", "material")
	addCmd.Flags().StringVar(&p.Color, "color", "", "color")
	addCmd.Flags().IntVar(&p.InStock, "stock", 0, "stock count")
	addCmd.Flags().StringVar(&p.Category, "category", "", "category")
	addCmd.Flags().BoolVar(&p.IsNew, "new", false, "flag as new")
	addCmd.Flags().BoolVar(&p.IsPopular, "popular", false, "flag as popular")
	addCmd.Flags().BoolVar(&p.IsPromotion, "promotion", false, "flag as promotion")
	addCmd.Flags().BoolVar(&genID, "generate-id", false, "force a generated id")
	productCmd.AddCommand(addCmd)

	var u domain.Product
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			id := args[0]
			cur, err := shopStore.Product(context.Background(), id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				cur.Name = u.Name
			}
			if cmd.Flags().Changed("description") {
				cur.Description = u.Description
			}
			if cmd.Flags().Changed("price") {
				cur.Price = u.Price
			}
			if cmd.Flags().Changed("material") {
				cur.Material = u.Material
			}
			if cmd.Flags().Changed("color") {
				cur.Color = u.Color
			}
			if cmd.Flags().Changed("stock") {
				cur.InStock = u.InStock
			}
			if cmd.Flags().Changed("category") {
				cur.Category = u.Category
			}
			if cmd.Flags().Changed("new") {
				cur.IsNew = u.IsNew
			}
			if cmd.Flags().Changed("popular") {
				cur.IsPopular = u.IsPopular
			}
			if cmd.Flags().Changed("promotion") {
				cur.IsPromotion = u.IsPromotion
			}
			if err := checkAttributes(cur); err != nil {
				return err
			}

			start := time.Now()
			if err := shopStore.UpdateProduct(context.Background(), id, cur); err != nil {
				slog.Error("product update failed", "product_id", id, "error", err)
				return err
			}
			slog.Info("product updated", "product_id", id, "duration_ms", time.Since(start).Milliseconds())
			b, _ := json.MarshalIndent(cur, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	updateCmd.Flags().StringVar(&u.Name, "name", "", "name")
	updateCmd.Flags().StringVar(&u.Description, "description", "", "description")
	updateCmd.Flags().Float64Var(&u.Price, "price", 0, "price")
	updateCmd.Flags().StringVar(&u.Material, "material", "", "material")
	updateCmd.Flags().StringVar(&u.Color, "color", "", "color")
	updateCmd.Flags().IntVar(&u.InStock, "stock", 0, "stock count")
	updateCmd.Flags().StringVar(&u.Category, "category", "", "category")
	updateCmd.Flags().BoolVar(&u.IsNew, "new", false, "flag as new")
	updateCmd.Flags().BoolVar(&u.IsPopular, "popular", false, "flag as popular")
	updateCmd.Flags().BoolVar(&u.IsPromotion, "promotion", false, "flag as promotion")
	productCmd.AddCommand(updateCmd)

	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := shopStore.DeleteProduct(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	productCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(productCmd)

	// orders (admin gated)
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders (admin)",
	}

	var oOutput string
	ordersListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			orders, err := shopStore.Orders(context.Background())
			if err != nil {
				return err
			}
			if oOutput == "json" {
				b, _ := json.MarshalIndent(orders, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, o := range orders {
				fmt.Printf("%s | %s %s | %d line(s) | %.2f | %s | %s\n",
					o.ID, o.Customer.FirstName, o.Customer.LastName,
					len(o.Items), o.Total, o.Status, o.Date)
			}
			return nil
		},
	}
	ordersListCmd.Flags().StringVar(&oOutput, "output", "", "output format")
	ordersCmd.AddCommand(ordersListCmd)

	ordersStatusCmd := &cobra.Command{
		Use:   "status <orderID> <status>",
		Short: "Advance an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if err := shopStore.UpdateOrderStatus(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			slog.Info("order status updated", "order_id", args[0], "status", args[1])
			fmt.Println("updated")
			return nil
		},
	}
	ordersCmd.AddCommand(ordersStatusCmd)

	rootCmd.AddCommand(ordersCmd)

	// stats (admin gated)
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show shop statistics (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			stats, err := shopStore.Stats(context.Background())
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(stats, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	rootCmd.AddCommand(statsCmd)
}

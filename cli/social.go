package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"printverse/domain"
)

func init() {
	socialCmd := &cobra.Command{
		Use:   "social",
		Short: "Contact-page social links",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List social links",
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := shopStore.SocialLinks(context.Background())
			if err != nil {
				return err
			}
			for _, l := range links {
				fmt.Printf("%s | %s | %s\n", l.ID, l.Name, l.URL)
			}
			return nil
		},
	}
	socialCmd.AddCommand(listCmd)

	var name, url string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a social link (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			link, err := shopStore.AddSocialLink(context.Background(), domain.SocialLink{
				Name: name,
				URL:  url,
			})
			if err != nil {
				return err
			}
			fmt.Printf("added %s\n", link.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "display name")
	addCmd.Flags().StringVar(&url, "url", "", "link URL")
	socialCmd.AddCommand(addCmd)

	var uName, uURL string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a social link (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if err := shopStore.UpdateSocialLink(context.Background(), args[0], domain.SocialLink{
				Name: uName,
				URL:  uURL,
			}); err != nil {
				return err
			}
			fmt.Println("updated")
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "display name")
	updateCmd.Flags().StringVar(&uURL, "url", "", "link URL")
	socialCmd.AddCommand(updateCmd)

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a social link (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if err := shopStore.DeleteSocialLink(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("removed")
			return nil
		},
	}
	socialCmd.AddCommand(removeCmd)

	rootCmd.AddCommand(socialCmd)
}

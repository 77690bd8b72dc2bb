package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"printverse/util"
)

func init() {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Backup, restore and inspect the stored data",
	}

	var exportFile string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole store to a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := shopStore.Export(context.Background())
			if err != nil {
				return err
			}
			file := exportFile
			if file == "" {
				file = util.BackupFilename(time.Now())
			}
			if err := os.WriteFile(file, out, 0o644); err != nil {
				return err
			}
			fmt.Printf("exported to %s\n", file)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file (default embeds today's date)")
	dataCmd.AddCommand(exportCmd)

	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Replace the whole store from a JSON backup (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if importFile == "" {
				return fmt.Errorf("--file required")
			}
			payload, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}
			if err := shopStore.Import(context.Background(), payload); err != nil {
				return err
			}
			fmt.Println("imported")
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	dataCmd.AddCommand(importCmd)

	var force bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored data (admin); the next access reseeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if !force {
				fmt.Print("Delete ALL shop data? (y/N): ")
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := shopStore.ClearAll(context.Background()); err != nil {
				return err
			}
			fmt.Println("cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	dataCmd.AddCommand(clearCmd)

	restoreCmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore default data when the catalog is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			acted, err := shopStore.RestoreDefaults(context.Background())
			if err != nil {
				return err
			}
			if acted {
				fmt.Println("default data restored")
			} else {
				fmt.Println("store already has products, nothing to do")
			}
			return nil
		},
	}
	dataCmd.AddCommand(restoreCmd)

	ensureCmd := &cobra.Command{
		Use:   "ensure",
		Short: "Seed the store only when no data exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return shopStore.EnsureExists(context.Background())
		},
	}
	dataCmd.AddCommand(ensureCmd)

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show stored-data counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := shopStore.Info(context.Background())
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(info, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	dataCmd.AddCommand(infoCmd)

	rootCmd.AddCommand(dataCmd)
}

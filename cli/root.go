// Package cli provides the cobra-based CLI for the printverse shop.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"printverse/auth"
	"printverse/checkout"
	"printverse/storage"
	"printverse/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "printverse",
		Short: "A 3D-printed keychain storefront",
		Long: "printverse manages a small keychain shop: catalog, cart,\n" +
			"checkout, order history and an admin console, all persisted\n" +
			"as a single blob in the configured storage backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject store and session
			if shopStore != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			logger := slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			)
			slog.SetDefault(logger)

			backend, err := storage.New(
				viper.GetString("store"),
				viper.GetString("store-file"),
				viper.GetString("redis-addr"),
			)
			if err != nil {
				return err
			}
			verifier := auth.NewBcryptVerifier(0)
			shopStore = store.New(backend, verifier, logger)
			session = auth.NewSessionManager(
				viper.GetString("session-file"),
				[]byte(viper.GetString("session-secret")),
				viper.GetDuration("session-ttl"),
			)
			checkoutSvc = checkout.NewService(shopStore, checkout.Options{
				DecrementStock: viper.GetBool("decrement-stock"),
			}, logger)
			return nil
		},
	}

	// wired in PersistentPreRunE, or injected by tests
	shopStore   *store.Store
	session     *auth.SessionManager
	checkoutSvc *checkout.Service
)

func init() {
	rootCmd.PersistentFlags().String("store", "file", "storage backend: memory|file|redis")
	rootCmd.PersistentFlags().String("store-file", "data/printverse.json", "file backend path")
	rootCmd.PersistentFlags().String("redis-addr", "localhost:6379", "redis backend address")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("session-file", "data/session", "admin session file")
	rootCmd.PersistentFlags().String("session-secret", "printverse-local-secret", "admin session signing secret")
	rootCmd.PersistentFlags().Duration("session-ttl", 12*time.Hour, "admin session lifetime")
	rootCmd.PersistentFlags().Bool("decrement-stock", false, "reduce stock counts on checkout")

	for _, name := range []string{
		"store", "store-file", "redis-addr", "config", "log-level",
		"session-file", "session-secret", "session-ttl", "decrement-stock",
	} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("PRINTVERSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("printverse> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)
}

// requireAdmin gates admin-console commands on a valid session.
func requireAdmin() error {
	if session == nil {
		return fmt.Errorf("admin session not configured")
	}
	if _, err := session.Verify(); err != nil {
		return err
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

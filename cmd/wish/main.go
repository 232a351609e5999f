package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wishgallery/internal/config"
	"wishgallery/internal/lang"
	"wishgallery/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	langFlag   string
	timeout    time.Duration

	// Loaded by PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wish",
	Short: "The Wish Gallery - tell Santa your wish, open one of three gifts",
	Long: `The Wish Gallery asks Gemini for three small gifts that answer your wish.
Pick one box to open it; make another wish to start over.

Run without arguments to start the interactive gallery.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		// The gallery owns the terminal, so its logs go to a file.
		if cmd == cmd.Root() && cfg.Logging.File == "" {
			cfg.Logging.File = filepath.Join(filepath.Dir(configPath), "wish.log")
		}
		if err := logging.Initialize(cfg.Logging); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Boot("configuration loaded",
			"config", configPath,
			"model", cfg.Gemini.Model,
			"language", cfg.GetLanguage().String(),
			"api_key", cfg.Gemini.HasAPIKey())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive gallery
		return runGallery(cmd.Context())
	},
}

func loadConfig() (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if langFlag != "" {
		l, err := lang.Parse(langFlag)
		if err != nil {
			return nil, fmt.Errorf("--lang: %w", err)
		}
		c.Session.Language = l.String()
	}
	if verbose {
		c.Logging.DebugMode = true
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", configPath, err)
	}
	return c, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Display language: en or zh (or set WISH_LANGUAGE env)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for a one-shot wish")

	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print gifts as JSON")

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

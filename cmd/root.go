package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	httpcmd "github.com/rd1855/portfolio_backend/cmd/http"
	systemcmd "github.com/rd1855/portfolio_backend/cmd/system"
	"github.com/rd1855/portfolio_backend/pkg/constants"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:     constants.AppName,
	Short:   "Portfolio backend: profile content, contact form and page-view analytics.",
	Version: constants.AppVersion,
	Long: `Portfolio backend serves static profile content (portfolio, skills, experience,
certifications, resume) and accepts contact form submissions and page-view events.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFile(envFile)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnvFile loads path into the environment when it exists. Variables that
// are already set win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func init() {
	// Global flags, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading config")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}

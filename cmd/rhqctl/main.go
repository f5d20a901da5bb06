package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "rhqctl",
	Short: "RHQ server and administration tool",
	Long: `rhqctl runs the RHQ server and administers its database, configuration
and access tokens.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = config.Get().LogLevel
		}
		development, _ := cmd.Flags().GetBool("log-development")
		if err := logger.Init(level, development); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); defaults to the configured log_level")
	rootCmd.PersistentFlags().Bool("log-development", false, "human readable console logging")
}

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

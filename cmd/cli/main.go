package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonkvalheim/bankist/internal/bootstrap"
	"github.com/simonkvalheim/bankist/internal/ledger"
	"github.com/simonkvalheim/bankist/internal/logger"
	"github.com/simonkvalheim/bankist/internal/session"
	"github.com/simonkvalheim/bankist/internal/shell"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "bankist",
	Short: "In-memory demo bank ledger",
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session reading commands from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewWithWriter(cmd.ErrOrStderr(), logLevel)

		dir := bootstrap.Initialize(log)
		engine := ledger.NewEngine(time.Now, log)
		controller := session.NewController(dir, engine, time.Now, log)

		fmt.Fprintln(cmd.OutOrStdout(), "Log in to get started (type help for commands)")
		return shell.New(controller, cmd.OutOrStdout()).Run(cmd.InOrStdin())
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the seeded demo accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := bootstrap.Initialize(logger.NewWithWriter(cmd.ErrOrStderr(), logLevel))
		for _, acc := range dir.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-24s %-6s %d movements\n",
				acc.Username, acc.Owner, acc.Locale, len(acc.Movements))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(shellCmd, accountsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

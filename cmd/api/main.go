package main

import (
	"log/slog"
	"os"
	"time"

	"foodapp/internal/config"

	"github.com/spf13/cobra"
)

type realClock struct {
	loc *time.Location
}

// APP_TIMEZONEの現在時刻。割引コードの「今日」もこれで決まる
func (c *realClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func newRootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:           "foodapp",
		Short:         "Food ordering backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile == "" {
				return nil
			}
			return config.LoadDotEnv(envFile)
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file (missing file is ignored)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"releng-sop/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debug bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "releng-sop",
	Short: "Release engineering standard operating procedures",
	Long: `releng-sop automates release engineering procedures against koji, pulp and PDC.

Every workflow is a dry run unless --commit is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	l, logErr := errorLogger(debug)
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if debug {
		l.Error("command failed", zap.Error(err), zap.String("error_type", fmt.Sprintf("%T", err)))
	} else {
		l.Error("command failed", zap.Error(err))
	}
	_ = l.Sync()
	os.Exit(1)
}

// errorLogger builds the logger reporting a failed command.
// Without debug it writes one console line; with debug it uses the development
// config with a stack trace.
func errorLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return logger.New(&logger.Config{Level: "debug", Format: "json"})
	}
	return logger.New(&logger.Config{Level: "error", Format: "console"})
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Print full error details and stack traces. By default only error messages are displayed.")
}

package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	get_completions "github.com/walteh/jqls/cmd/jqls/get-completions"
	get_definitions "github.com/walteh/jqls/cmd/jqls/get-definitions"
	get_hover "github.com/walteh/jqls/cmd/jqls/get-hover"
	get_tokens "github.com/walteh/jqls/cmd/jqls/get-tokens"
	debugpkg "github.com/walteh/jqls/pkg/debug"
	"gitlab.com/tozd/go/errors"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var debugLogs bool

	rootCmd := &cobra.Command{
		Use:   "jqls",
		Short: "language support tooling for jq-style filter files",
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if debugLogs {
			level = zerolog.TraceLevel
		}

		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, PartsExclude: []string{"time"}}).
			Level(level).
			With().
			Str("run_id", xid.New().String()).
			Logger().
			Hook(debugpkg.CustomTimeHook{WithColor: true}).
			Hook(debugpkg.CustomCallerHook{WithColor: true})

		cmd.SetContext(logger.WithContext(cmd.Context()))
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(get_definitions.NewGetDefinitionsCommand())
	rootCmd.AddCommand(get_tokens.NewGetTokensCommand())
	rootCmd.AddCommand(get_completions.NewGetCompletionsCommand())
	rootCmd.AddCommand(get_hover.NewGetHoverCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

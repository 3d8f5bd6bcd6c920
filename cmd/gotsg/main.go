package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/cmd/gotsg/demo"
	"github.com/walteh/gotsg/cmd/gotsg/diff"
	"github.com/walteh/gotsg/cmd/gotsg/dump"
	"github.com/walteh/gotsg/cmd/gotsg/find"
	"github.com/walteh/gotsg/cmd/gotsg/flatten"
	"github.com/walteh/gotsg/cmd/gotsg/tokens"
	tsgdebug "github.com/walteh/gotsg/pkg/debug"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "gotsg",
		Short:        "Inspect labeled TeX string group trees",
		SilenceUsage: true,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("dir", ".", "directory tree file patterns are resolved against")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}

		logger := tsgdebug.NewConsoleLogger(cmd.ErrOrStderr(), level, !color.NoColor)
		cmd.SetContext(logger.WithContext(cmd.Context()))

		return nil
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(flatten.NewFlattenCommand())
	rootCmd.AddCommand(dump.NewDumpCommand())
	rootCmd.AddCommand(find.NewFindCommand())
	rootCmd.AddCommand(tokens.NewTokensCommand())
	rootCmd.AddCommand(diff.NewDiffCommand())
	rootCmd.AddCommand(demo.NewDemoCommand())

	return rootCmd
}

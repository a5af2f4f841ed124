package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nvlled/label-it/lib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type cliOptions struct {
	lib.Options
	verbose bool
}

func newRootCmd(run func(lib.Config) error) *cobra.Command {
	opts := cliOptions{Options: lib.DefaultOptions()}

	cmd := &cobra.Command{
		Use:           "label-it",
		Short:         "A tiny movable label window for screen recordings.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(opts.verbose)

			config, err := opts.Resolve()
			if err != nil {
				return err
			}
			return run(config)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVar(&opts.Text, "text", opts.Text, "label text")
	flags.StringVar(&opts.Background, "bg", opts.Background, "background color, #RRGGBB or #RRGGBBAA")
	flags.StringVar(&opts.Foreground, "fg", opts.Foreground, "text color, #RRGGBB or #RRGGBBAA")
	flags.Float64Var(&opts.FontSize, "font-size", opts.FontSize, "font size in pixels")
	flags.Float64Var(&opts.Width, "width", opts.Width, "initial window width")
	flags.Float64Var(&opts.Height, "height", opts.Height, "initial window height")
	flags.BoolVar(&opts.Undecorated, "undecorated", opts.Undecorated, "hide the window frame and drag the label with the mouse")
	flags.BoolVar(&opts.AlwaysOnTop, "always-on-top", opts.AlwaysOnTop, "keep the window above other windows")
	flags.StringVar(&opts.Title, "title", opts.Title, "window title")
	flags.StringVar(&opts.Font, "font", opts.Font, "font, one of: "+strings.Join(lib.FontNames(), ", "))
	flags.BoolVar(&opts.verbose, "verbose", false, "log debug messages")

	return cmd
}

func setupLogger(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func main() {
	if err := newRootCmd(lib.Run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peterouob/gobasics/config"
	"github.com/peterouob/gobasics/ordering"
	"github.com/peterouob/gobasics/router"
	"github.com/peterouob/gobasics/tutorial"
)

type rootArgs struct {
	NoColor    bool
	NoHeadings bool
	LogLevel   string
}

func (a rootArgs) config() *config.Config {
	cfg := config.NewConfig()
	cfg.Color = !a.NoColor && !color.NoColor
	cfg.Headings = !a.NoHeadings
	return cfg
}

func (a rootArgs) logger() (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(a.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	lg, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return lg, nil
}

func (a rootArgs) runner(out io.Writer) (*tutorial.Runner, error) {
	lg, err := a.logger()
	if err != nil {
		return nil, err
	}
	r := tutorial.New(a.config(), out, lg)
	router.SetupRouter(r)
	return r, nil
}

func newRootCommand(out io.Writer) *cobra.Command {
	var arg rootArgs
	runE := func(cmd *cobra.Command, names []string) error {
		r, err := arg.runner(out)
		if err != nil {
			return err
		}
		return r.Run(cmd.Context(), names...)
	}
	rootCmd := &cobra.Command{
		Use:   "gobasics [lesson...]",
		Short: "gobasics walks through basic syntax, one lesson at a time",
		Args:  cobra.ArbitraryArgs,
		RunE:  runE,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	f := rootCmd.PersistentFlags()
	f.BoolVar(&arg.NoColor, "no-color", false, "Disable colored headings")
	f.BoolVar(&arg.NoHeadings, "no-headings", false, "Do not print lesson headings")
	f.StringVar(&arg.LogLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run [lesson...]",
			Short: "Run all lessons or the named ones",
			RunE:  runE,
		},
		newListCommand(&arg),
		newCompareCommand(),
	)
	return rootCmd
}

func newListCommand(root *rootArgs) *cobra.Command {
	var byName bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := root.runner(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			lessons := r.Lessons()
			if byName {
				lessons = r.Sorted()
			}
			for _, l := range lessons {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Name, l.Title)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&byName, "sorted", false, "Order lessons by name")
	return cmd
}

// compareOperands drops a leading "--" that flag parsing would otherwise
// have consumed.
func compareOperands(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two integers",
		// Negative operands such as -3 must not be read as shorthand flags.
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return cobra.ExactArgs(2)(cmd, compareOperands(args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			args = compareOperands(args)
			a, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parse %q", args[0])
			}
			b, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.Wrapf(err, "parse %q", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %s\n", a, b, ordering.Compare(a, b))
			return nil
		},
	}
}

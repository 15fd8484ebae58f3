package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"jailcfg/jail"
	"jailcfg/query"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errNoMatch is the silent exit-1 path: absence markers and diagnostics
// have already been printed, so no additional error output is wanted.
var errNoMatch = errors.New("no matching jails or parameters")

func main() {
	err := rootCommand().Execute()
	if err != nil {
		code := 1
		var ee *exec.ExitError
		if errors.As(err, &ee) && ee.ExitCode() > 0 {
			code = ee.ExitCode()
		}
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintf(os.Stderr, "jailcfg: %v\n", err)
		}
		os.Exit(code)
	}
}

// config carries the output-mode flags explicitly instead of as globals.
type config struct {
	valuesOnly bool
	debug      bool
}

func (c *config) apply(cmd *cobra.Command) query.Options {
	if c.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	format := query.Named
	if c.valuesOnly {
		format = query.Values
	}
	return query.Options{
		Format: format,
		Out:    cmd.OutOrStdout(),
		Diag:   cmd.ErrOrStderr(),
	}
}

// rootCommand implements the default "show" mode.
//
// jailcfg [-n] <jail-name|all> [param ...]
//
// The first positional argument selects the jail; the literal word "all"
// selects every running jail (a jail actually named "all", "list", or
// "version" cannot be addressed this way).  The remaining arguments name
// the parameters to print; "all" or no arguments prints every parameter
// the jail declares, in declaration order.
func rootCommand() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:   "jailcfg [-n] <jail-name|all> [param ...]",
		Short: "Print configuration parameters of running jails",
		Long: `Print configuration parameters of running jails.

Parameter values are written to stdout; a diagnostic is written to stderr
for every requested parameter a jail does not define, so the two can be
redirected independently.  The exit status is 0 if at least one requested
parameter was found defined in at least one selected jail, 1 otherwise.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			disableUsage(cmd)
			opts := cfg.apply(cmd)
			if args[0] != "all" {
				opts.Jails = args[0:1]
			}
			params := args[1:]
			if len(params) != 1 || params[0] != "all" {
				opts.Params = params
			}
			stream, err := jail.Export(cmd.Context())
			if err != nil {
				return err
			}
			if !query.Run(stream, opts) {
				return errNoMatch
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(
		&cfg.valuesOnly,
		"values",
		"n",
		false,
		"print shell-quoted values only, one line per jail")
	root.PersistentFlags().BoolVar(
		&cfg.debug,
		"debug",
		false,
		"enable debug logging")
	root.AddCommand(listCommand(cfg))
	root.AddCommand(versionCommand())
	return root
}

// disableUsage is a helper to disable the Usage output on errors.  Usage
// output is wanted for input validation errors but not for failures of the
// actual command execution.
func disableUsage(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(*cobra.Command) error { return nil })
}

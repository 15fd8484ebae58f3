package main

import (
	"jailcfg/jail"
	"jailcfg/query"

	"github.com/spf13/cobra"
)

// listCommand prints the names of running jails.
//
// list [jail-name ...]
//
// With no arguments every running jail is listed; with arguments only the
// named jails are listed (names are matched exactly, and names that match
// no running jail are skipped without error).  Names are printed
// tab-separated on one line.  The exit status is 0 if at least one jail
// was listed, 1 otherwise.
func listCommand(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "list [jail-name ...]",
		Short: "List the names of running jails",
		RunE: func(cmd *cobra.Command, args []string) error {
			disableUsage(cmd)
			opts := cfg.apply(cmd)
			opts.Jails = args
			stream, err := jail.Export(cmd.Context())
			if err != nil {
				return err
			}
			if query.List(stream, opts) == 0 {
				return errNoMatch
			}
			return nil
		},
	}
}

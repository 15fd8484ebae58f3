// Package query selects parameters from exported jail records and renders
// them for either humans or shell scripts.
package query

import (
	"fmt"
	"io"
	"strings"

	"jailcfg/jail"

	"github.com/sirupsen/logrus"
)

// Format selects how parameter values are rendered.
type Format int

const (
	// Named prints one "key='value'" line per parameter, or "unset key"
	// when the parameter is not defined.
	Named Format = iota
	// Values prints all values for one jail on a single line, shell-quoted
	// and space-separated, with the literal token "--" standing in for
	// undefined parameters.
	Values
)

// Options carries the selection and output configuration through the call
// chain.  The zero value selects every jail, every declared parameter, and
// the Named format.
type Options struct {
	// Jails filters jails by exact, case-sensitive name match.  Empty
	// means every jail is eligible.
	Jails []string
	// Params is the ordered list of parameters to print.  Empty means
	// every parameter the jail declares, in declaration order.
	Params []string
	Format Format
	// Out receives parameter values and absence markers.
	Out io.Writer
	// Diag receives one line per missing parameter.
	Diag io.Writer
}

// Selected reports whether rec passes the jail-name filter.
func (o Options) Selected(rec *jail.Record) bool {
	if len(o.Jails) == 0 {
		return true
	}
	name := rec.Name()
	for _, j := range o.Jails {
		if j == name {
			return true
		}
	}
	return false
}

// Show prints the requested parameters of one jail and returns how many of
// them were defined.  An undefined parameter produces an absence marker on
// Out and a diagnostic naming the jail and the parameter on Diag; a
// parameter declared with an empty value counts as defined.
func Show(rec *jail.Record, opts Options) int {
	params := opts.Params
	if len(params) == 0 {
		params = rec.Keys()
	}
	found := 0
	printed := 0
	for _, param := range params {
		value, defined := rec.Get(param)
		if defined {
			found++
		} else {
			fmt.Fprintf(opts.Diag, "%s: parameter %q is not defined\n", rec.Name(), param)
		}
		switch opts.Format {
		case Values:
			if printed > 0 {
				io.WriteString(opts.Out, " ")
			}
			if defined {
				io.WriteString(opts.Out, Quote(value))
			} else {
				io.WriteString(opts.Out, "--")
			}
			printed++
		default:
			if defined {
				fmt.Fprintf(opts.Out, "%s=%s\n", param, Quote(value))
			} else {
				fmt.Fprintf(opts.Out, "unset %s\n", param)
			}
		}
	}
	if opts.Format == Values && printed > 0 {
		io.WriteString(opts.Out, "\n")
	}
	return found
}

// Run drains the stream, showing the requested parameters of every jail
// that passes the filter.  It reports whether at least one requested
// parameter was found defined in at least one jail.
func Run(s *jail.Stream, opts Options) bool {
	found := 0
	rec := &jail.Record{}
	for s.Next(rec) {
		if !opts.Selected(rec) {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"jail":   rec.Name(),
			"params": rec.Len(),
		}).Debug("selected jail")
		found += Show(rec, opts)
	}
	return found > 0
}

// List prints the names of every jail in the stream that passes the filter,
// tab-separated on one line, and returns the number printed.  Nothing is
// printed when no jail is eligible.
func List(s *jail.Stream, opts Options) int {
	var names []string
	rec := &jail.Record{}
	for s.Next(rec) {
		if !opts.Selected(rec) {
			continue
		}
		name, ok := rec.Get("name")
		if !ok {
			continue
		}
		names = append(names, name)
	}
	if len(names) > 0 {
		fmt.Fprintln(opts.Out, strings.Join(names, "\t"))
	}
	return len(names)
}

// Quote wraps a value in single quotes so it survives shell word splitting.
// Values are quoted unconditionally to keep the output shape stable for
// scripts; embedded single quotes use the '\'' escape.
func Quote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"orfscan/internal/version"
)

// Group is one titled block of flags in the help text.
type Group struct {
	Title string
	Flags []string
}

// ScanGroups is the help layout shared by translate and orfs.
var ScanGroups = []Group{
	{"Translation", []string{"type", "genetic-code", "min-orf-length", "allow-open-orfs"}},
	{"Input & performance", []string{"threads", "skip-invalid"}},
	{"Output", []string{"output", "header", "line-width", "pretty", "gzip", "no-match-exit-code"}},
	{"Miscellaneous", []string{"config", "log-level", "log-format", "quiet", "help"}},
}

// UsageCommon installs a grouped usage printer on cmd. Flags not named in
// any group are listed last under "Other".
func UsageCommon(cmd *cobra.Command, groups []Group) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		printUsage(c.OutOrStderr(), c, groups)
		return nil
	})
}

func printUsage(out io.Writer, c *cobra.Command, groups []Group) {
	fmt.Fprintf(out, "%s – six-frame translation and ORF finder (version %s)\n\n", c.Root().Name(), version.Version)
	fmt.Fprintf(out, "Usage:\n  %s\n", c.UseLine())
	if c.HasExample() {
		fmt.Fprintf(out, "\nExamples:\n%s\n", c.Example)
	}

	all := c.Flags()
	used := map[string]bool{}
	for _, g := range groups {
		fs := pflag.NewFlagSet(g.Title, pflag.ContinueOnError)
		for _, name := range g.Flags {
			if f := all.Lookup(name); f != nil {
				fs.AddFlag(f)
				used[name] = true
			}
		}
		if fs.HasFlags() {
			fmt.Fprintf(out, "\n%s:\n%s", g.Title, fs.FlagUsages())
		}
	}
	rest := pflag.NewFlagSet("other", pflag.ContinueOnError)
	all.VisitAll(func(f *pflag.Flag) {
		if !used[f.Name] {
			rest.AddFlag(f)
		}
	})
	if rest.HasFlags() {
		fmt.Fprintf(out, "\nOther:\n%s", rest.FlagUsages())
	}
}

// internal/clibase/common.go
package clibase

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"orfscan-core/codon"
	"orfscan/internal/config"
	"orfscan/internal/output"
)

// RegisterGlobal wires the flags every subcommand inherits.
func RegisterGlobal(fs *pflag.FlagSet) {
	d := config.Defaults()
	fs.String("config", "", "config file (yaml, toml or json); env ORFSCAN_* also applies")
	fs.String("log-level", d.LogLevel, "log level: debug | info | warn | error")
	fs.String("log-format", d.LogFormat, "log format: text | json | logfmt")
	fs.BoolP("quiet", "q", false, "only log errors")
}

// RegisterScan wires the translation settings. orfs adds the ORF filter.
func RegisterScan(fs *pflag.FlagSet, orfs bool) {
	d := config.Defaults()
	fs.String("type", d.Type, "input alphabet: dna | rna | aa")
	fs.Int("genetic-code", d.GeneticCode, "NCBI translation table id (list them with: orfscan codes)")
	if orfs {
		fs.Int("min-orf-length", d.MinORFLength, "minimum ORF length in residues")
		fs.Bool("allow-open-orfs", d.AllowOpenORFs, "keep ORFs open at both ends regardless of --min-orf-length")
	}
}

// RegisterRun wires input, performance and output flags.
func RegisterRun(fs *pflag.FlagSet) {
	d := config.Defaults()
	fs.IntP("threads", "t", d.Threads, "worker threads (0=physical cores)")
	fs.Bool("skip-invalid", false, "log and skip records that fail alphabet validation instead of aborting")
	fs.StringP("output", "o", d.Output, "output: "+strings.Join(output.Formats, " | "))
	fs.Bool("header", d.Header, "print the TSV header row (text output)")
	fs.Int("line-width", d.LineWidth, "wrap FASTA sequences (0=single line)")
	fs.Bool("pretty", false, "colored block under each row (text output)")
	fs.Bool("gzip", false, "gzip-compress standard output")
	fs.Int("no-match-exit-code", d.NoMatchExitCode, "exit code when nothing was written")
}

// RegisterServe wires the HTTP listener flags.
func RegisterServe(fs *pflag.FlagSet) {
	fs.String("addr", config.Defaults().Addr, "listen address")
}

// Code is one row of `orfscan codes`.
type Code struct {
	ID   int
	Name string
}

// Codes lists the available genetic codes by id.
func Codes() []Code {
	ids := codon.IDs()
	out := make([]Code, 0, len(ids))
	for _, id := range ids {
		t, _ := codon.Lookup(id)
		out = append(out, Code{ID: id, Name: t.Name})
	}
	return out
}

// CodesTable renders Codes as "id<TAB>name" lines.
func CodesTable() string {
	var b strings.Builder
	for _, c := range Codes() {
		fmt.Fprintf(&b, "%2d\t%s\n", c.ID, c.Name)
	}
	return b.String()
}

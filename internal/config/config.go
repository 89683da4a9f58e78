// Package config is for run-wide settings that are unmarshalled from viper
// (flags, an optional config file, and ORFSCAN_* environment variables).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"orfscan-core/codon"
	"orfscan-core/scan"
	"orfscan-core/seq"
	"orfscan/internal/output"
)

// EnvPrefix is prepended to every environment key: ORFSCAN_MIN_ORF_LENGTH.
const EnvPrefix = "ORFSCAN"

// ErrInvalid marks configuration errors (exit code 2).
var ErrInvalid = errors.New("invalid configuration")

// Config is the root-level settings struct.
type Config struct {
	// input alphabet: dna, rna or aa
	Type string `mapstructure:"type"`
	// minimum ORF length in residues
	MinORFLength int `mapstructure:"min-orf-length"`
	// keep ORFs open at both ends even when shorter than MinORFLength
	AllowOpenORFs bool `mapstructure:"allow-open-orfs"`
	// NCBI translation table id
	GeneticCode int `mapstructure:"genetic-code"`

	// worker goroutines; 0 means one per physical core
	Threads int `mapstructure:"threads"`

	Output          string `mapstructure:"output"`
	Header          bool   `mapstructure:"header"`
	LineWidth       int    `mapstructure:"line-width"`
	Pretty          bool   `mapstructure:"pretty"`
	Gzip            bool   `mapstructure:"gzip"`
	SkipInvalid     bool   `mapstructure:"skip-invalid"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	Quiet     bool   `mapstructure:"quiet"`

	// serve only
	Addr string `mapstructure:"addr"`
}

// Defaults mirrors the flag defaults for callers that build a Config by hand.
func Defaults() Config {
	return Config{
		Type:        seq.DNA.String(),
		GeneticCode: codon.StandardID,
		Output:      output.FormatFASTA,
		Header:      true,
		LogLevel:    "info",
		LogFormat:   "text",
		Addr:        "127.0.0.1:8080",
	}
}

// Load binds flags to v, reads the --config file if one is named, layers the
// environment on top, and decodes the result.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: config file %s: %v", ErrInvalid, path, err)
		}
	}

	c := Defaults()
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: unable to decode into struct: %v", ErrInvalid, err)
	}
	return c, c.Validate()
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json", "logfmt"}
)

// Validate checks every field; the first problem found is returned wrapped in ErrInvalid.
func (c Config) Validate() error {
	bad := func(format string, a ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...))
	}
	if _, err := seq.ParseAlphabet(c.Type); err != nil {
		return fmt.Errorf("%w: --type: %v", ErrInvalid, err)
	}
	if c.MinORFLength < 0 {
		return bad("--min-orf-length must be >= 0 (got %d)", c.MinORFLength)
	}
	if _, err := codon.Lookup(c.GeneticCode); err != nil {
		return fmt.Errorf("%w: --genetic-code: %v", ErrInvalid, err)
	}
	if c.Threads < 0 {
		return bad("--threads must be >= 0 (got %d)", c.Threads)
	}
	if !output.ValidFormat(c.Output) {
		return bad("--output must be one of %s (got %q)", strings.Join(output.Formats, ", "), c.Output)
	}
	if c.LineWidth < 0 {
		return bad("--line-width must be >= 0 (got %d)", c.LineWidth)
	}
	if c.Pretty && c.Output != output.FormatText {
		return bad("--pretty requires --output text")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return bad("--no-match-exit-code must be in 0..255 (got %d)", c.NoMatchExitCode)
	}
	if !oneOf(c.LogLevel, logLevels) {
		return bad("--log-level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.LogLevel)
	}
	if !oneOf(c.LogFormat, logFormats) {
		return bad("--log-format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.LogFormat)
	}
	return nil
}

// Scanner builds the core scanner for a validated config.
func (c Config) Scanner() (scan.Scanner, error) {
	a, err := seq.ParseAlphabet(c.Type)
	if err != nil {
		return scan.Scanner{}, err
	}
	tbl, err := codon.Lookup(c.GeneticCode)
	if err != nil {
		return scan.Scanner{}, err
	}
	return scan.Scanner{
		Alphabet:      a,
		MinORFLength:  c.MinORFLength,
		AllowOpenORFs: c.AllowOpenORFs,
		Table:         tbl,
	}, nil
}

func oneOf(s string, list []string) bool {
	for _, x := range list {
		if strings.EqualFold(s, x) {
			return true
		}
	}
	return false
}

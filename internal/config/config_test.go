package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orfscan-core/seq"
)

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	d := Defaults()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("type", d.Type, "")
	fs.Int("min-orf-length", 0, "")
	fs.Bool("allow-open-orfs", false, "")
	fs.Int("genetic-code", d.GeneticCode, "")
	fs.String("output", d.Output, "")
	fs.Bool("pretty", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_DefaultsValidate(t *testing.T) {
	c, err := Load(viper.New(), flags(t))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), c)
}

func TestLoad_FlagsWin(t *testing.T) {
	c, err := Load(viper.New(), flags(t, "--type", "aa", "--min-orf-length", "20", "--allow-open-orfs"))
	require.NoError(t, err)
	assert.Equal(t, "aa", c.Type)
	assert.Equal(t, 20, c.MinORFLength)
	assert.True(t, c.AllowOpenORFs)

	s, err := c.Scanner()
	require.NoError(t, err)
	assert.Equal(t, seq.AminoAcid, s.Alphabet)
	assert.Equal(t, 20, s.MinORFLength)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("ORFSCAN_MIN_ORF_LENGTH", "7")
	t.Setenv("ORFSCAN_GENETIC_CODE", "11")
	c, err := Load(viper.New(), flags(t))
	require.NoError(t, err)
	assert.Equal(t, 7, c.MinORFLength)
	assert.Equal(t, 11, c.GeneticCode)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orfscan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("type: rna\nmin-orf-length: 30\noutput: jsonl\n"), 0o644))

	c, err := Load(viper.New(), flags(t, "--config", path, "--min-orf-length", "5"))
	require.NoError(t, err)
	assert.Equal(t, "rna", c.Type)
	assert.Equal(t, 5, c.MinORFLength) // flag beats file
	assert.Equal(t, "jsonl", c.Output)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(viper.New(), flags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
		msg  string
	}{
		{"type", func(c *Config) { c.Type = "xna" }, "--type"},
		{"min", func(c *Config) { c.MinORFLength = -1 }, "--min-orf-length"},
		{"code", func(c *Config) { c.GeneticCode = 7 }, "--genetic-code"},
		{"threads", func(c *Config) { c.Threads = -1 }, "--threads"},
		{"output", func(c *Config) { c.Output = "xml" }, "--output"},
		{"width", func(c *Config) { c.LineWidth = -3 }, "--line-width"},
		{"pretty", func(c *Config) { c.Pretty = true }, "--pretty"},
		{"exit", func(c *Config) { c.NoMatchExitCode = 300 }, "--no-match-exit-code"},
		{"level", func(c *Config) { c.LogLevel = "loud" }, "--log-level"},
		{"format", func(c *Config) { c.LogFormat = "xml" }, "--log-format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Defaults()
			tc.mut(&c)
			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

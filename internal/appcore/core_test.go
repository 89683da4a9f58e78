package appcore

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orfscan-core/scan"
	"orfscan-core/seq"
	"orfscan/internal/cmdutil"
	"orfscan/internal/config"
	"orfscan/internal/output"
)

func input(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(fn, []byte(body), 0o644))
	return fn
}

func run(t *testing.T, o Options, s scan.Scanner, c config.Config, orfs bool) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	logger := cmdutil.NewLogger(&errb, "info", "text", false)
	proc, wf := TranslationProcessor(s), NewTranslationWriterFactory(c)
	if orfs {
		proc, wf = ORFProcessor(s), NewORFWriterFactory(c)
	}
	code := Run(context.Background(), &out, logger, o, proc, wf)
	return code, out.String(), errb.String()
}

func TestRun_Translate(t *testing.T) {
	fn := input(t, ">r\nGTTACAATGAATG\n")
	code, out, logs := run(t, Options{SeqFiles: []string{fn}, Noun: "translation"}, scan.Scanner{}, config.Defaults(), false)
	require.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, ">r-frame0 len=13\nVTMNX\n>r-frame1 len=13\nLQ*M\n"))
	assert.Contains(t, logs, "1 record read, 6 translations written")
}

func TestRun_ORFsTextWithHeader(t *testing.T) {
	fn := input(t, ">r\nGTTACAATGAATG\n")
	c := config.Defaults()
	c.Output = output.FormatText
	code, out, _ := run(t, Options{SeqFiles: []string{fn}, Threads: 2}, scan.Scanner{MinORFLength: 4}, c, true)
	require.Equal(t, ExitOK, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, output.ORFTSVHeader, lines[0])
	assert.Len(t, lines, 5)
}

func TestRun_AlphabetErrorAborts(t *testing.T) {
	fn := input(t, ">ok\nACGT\n>prot\nMKVLWHEPR\n")
	code, _, logs := run(t, Options{SeqFiles: []string{fn}}, scan.Scanner{}, config.Defaults(), true)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, logs, `record "prot"`)
	assert.Contains(t, logs, "--type aa")
}

func TestRun_SkipInvalid(t *testing.T) {
	fn := input(t, ">prot\nMKVLWHEPR\n>r\nGTTACAATGAATG\n")
	code, out, logs := run(t, Options{SeqFiles: []string{fn}, SkipInvalid: true, Noun: "ORF"}, scan.Scanner{}, config.Defaults(), true)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, ">r-frame0-[0:5)\nVTMNX\n")
	assert.NotContains(t, out, "prot")
	assert.Contains(t, logs, "skipping record")
	assert.Contains(t, logs, "1 record skipped")
}

func TestRun_NoMatchExitCode(t *testing.T) {
	fn := input(t, ">r\nAC\n")
	code, out, _ := run(t, Options{SeqFiles: []string{fn}, NoMatchExitCode: 1}, scan.Scanner{}, config.Defaults(), true)
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestRun_MissingInput(t *testing.T) {
	code, _, logs := run(t, Options{SeqFiles: []string{filepath.Join(t.TempDir(), "nope.fa")}}, scan.Scanner{}, config.Defaults(), false)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, logs, "nope.fa")
}

func TestRun_Canceled(t *testing.T) {
	fn := input(t, ">r\nGTTACAATGAATG\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	code := Run(ctx, &out, cmdutil.NewLogger(io.Discard, "info", "text", true), Options{SeqFiles: []string{fn}},
		TranslationProcessor(scan.Scanner{}), NewTranslationWriterFactory(config.Defaults()))
	assert.Equal(t, ExitCanceled, code)
}

func TestRun_GzipOutput(t *testing.T) {
	fn := input(t, ">p-frame1\nMKV*\n")
	code, out, _ := run(t, Options{SeqFiles: []string{fn}, Gzip: true}, scan.Scanner{Alphabet: seq.AminoAcid}, config.Defaults(), true)
	require.Equal(t, ExitOK, code)
	zr, err := gzip.NewReader(strings.NewReader(out))
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, ">p-frame1-(0:3]\nMKV\n", string(plain))
}

func TestRun_AminoAcidReadLengthFromDescription(t *testing.T) {
	fn := input(t, ">p-frame1rc len=13\nIHCN\n>q-frame1rc\nIHCN\n")
	code, out, _ := run(t, Options{SeqFiles: []string{fn}}, scan.Scanner{Alphabet: seq.AminoAcid}, config.Defaults(), true)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, ">p-frame1rc-[0:4)\nIHCN\n>q-frame1rc-(0:4)\nIHCN\n", out)
}

func TestRun_DuplicateIDsWarn(t *testing.T) {
	fn := input(t, ">r\nATG\n>r\nATG\n")
	code, _, logs := run(t, Options{SeqFiles: []string{fn}, Threads: 1}, scan.Scanner{}, config.Defaults(), false)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, logs, "duplicate read id")
}

func TestWriterFactory_HeaderOnlyForText(t *testing.T) {
	c := config.Defaults()
	assert.Empty(t, NewORFWriterFactory(c).Header)
	c.Output = output.FormatText
	assert.Equal(t, output.ORFTSVHeader, NewORFWriterFactory(c).Header)
	assert.Equal(t, output.TranslationTSVHeader, NewTranslationWriterFactory(c).Header)
	c.Header = false
	assert.Empty(t, NewORFWriterFactory(c).Header)
}

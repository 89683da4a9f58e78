// Package cli builds the cobra command tree. Every invocation gets its own
// viper instance so commands can run in-process side by side (tests).
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"orfscan/internal/appcore"
	"orfscan/internal/clibase"
	"orfscan/internal/cliutil"
	"orfscan/internal/cmdutil"
	"orfscan/internal/config"
	"orfscan/internal/jsonutil"
	"orfscan/internal/server"
	"orfscan/internal/version"
	"orfscan/pkg/api"
)

// ErrUsage marks command-line errors (exit code 2).
var ErrUsage = errors.New("usage")

// NewRoot returns the root command. Subcommands that run to completion store
// their exit code in *code; any error returned by Execute is a usage error.
func NewRoot(code *int) *cobra.Command {
	root := &cobra.Command{
		Use:   "orfscan",
		Short: "Six-frame translation and open reading frame finder",
		Long: `orfscan translates nucleotide reads in all six reading frames and reports
the candidate open reading frame of each translation, classifying each ORF
boundary as closed (a start of the read in register, or a stop codon) or open.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("orfscan version {{.Version}}\n")
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v (see '%s --help')", ErrUsage, err, c.CommandPath())
	})
	clibase.RegisterGlobal(root.PersistentFlags())

	root.AddCommand(
		newTranslate(code),
		newORFs(code),
		newCodes(),
		newServe(code),
		newVersion(),
	)
	return root
}

// load resolves the configuration for cmd and builds its logger.
func load(cmd *cobra.Command) (config.Config, *log.Logger, error) {
	c, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return c, nil, err
	}
	return c, cmdutil.NewLogger(cmd.ErrOrStderr(), c.LogLevel, c.LogFormat, c.Quiet), nil
}

func runOptions(c config.Config, files []string, noun string) appcore.Options {
	return appcore.Options{
		SeqFiles:        files,
		Threads:         c.Threads,
		SkipInvalid:     c.SkipInvalid,
		Gzip:            c.Gzip,
		NoMatchExitCode: c.NoMatchExitCode,
		Noun:            noun,
	}
}

func newTranslate(code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "translate [flags] [FASTA/FASTQ ...]",
		Short:   "Translate every read in all six reading frames",
		Example: clibase.TranslateExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, logger, err := load(cmd)
			if err != nil {
				return err
			}
			s, err := c.Scanner()
			if err != nil {
				return err
			}
			if !s.Alphabet.IsNucleotide() {
				return fmt.Errorf("%w: translate needs --type dna or rna (got %s)", ErrUsage, s.Alphabet)
			}
			files, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}
			*code = appcore.Run(cmd.Context(), cmd.OutOrStdout(), logger, runOptions(c, files, "translation"),
				appcore.TranslationProcessor(s), appcore.NewTranslationWriterFactory(c))
			return nil
		},
	}
	clibase.RegisterScan(cmd.Flags(), false)
	clibase.RegisterRun(cmd.Flags())
	clibase.UsageCommon(cmd, clibase.ScanGroups)
	return cmd
}

func newORFs(code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orfs [flags] [FASTA/FASTQ ...]",
		Short:   "Report the candidate ORF of each frame (or of each amino-acid record)",
		Example: clibase.ORFExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, logger, err := load(cmd)
			if err != nil {
				return err
			}
			s, err := c.Scanner()
			if err != nil {
				return err
			}
			files, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUsage, err)
			}
			*code = appcore.Run(cmd.Context(), cmd.OutOrStdout(), logger, runOptions(c, files, "ORF"),
				appcore.ORFProcessor(s), appcore.NewORFWriterFactory(c))
			return nil
		},
	}
	clibase.RegisterScan(cmd.Flags(), true)
	clibase.RegisterRun(cmd.Flags())
	clibase.UsageCommon(cmd, clibase.ScanGroups)
	return cmd
}

func newCodes() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List the available genetic codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				_, err := io.WriteString(cmd.OutOrStdout(), clibase.CodesTable())
				return err
			}
			var out []api.GeneticCodeV1
			for _, line := range clibase.Codes() {
				out = append(out, api.GeneticCodeV1{ID: line.ID, Name: line.Name})
			}
			return jsonutil.EncodePretty(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newServe(code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve translation and ORF location as a JSON HTTP API",
		Example: clibase.ServeExamples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, err := load(cmd)
			if err != nil {
				return err
			}
			err = server.Run(cmd.Context(), c.Addr, server.NewRouter(c, logger), logger)
			switch {
			case err == nil:
			case cmd.Context().Err() != nil:
				*code = appcore.ExitCanceled
			default:
				logger.Error("server", "err", err)
				*code = appcore.ExitFailure
			}
			return nil
		},
	}
	clibase.RegisterScan(cmd.Flags(), true)
	clibase.RegisterServe(cmd.Flags())
	return cmd
}

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "orfscan version %s\n", version.Version)
			return err
		},
	}
}

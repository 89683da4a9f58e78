package appcore

import (
	"io"

	"orfscan/internal/config"
	"orfscan/internal/output"
	"orfscan/internal/pretty"
	"orfscan/internal/writers"
)

// WriterFactory holds everything a writer needs besides the destination.
type WriterFactory struct {
	Format    string
	Header    string
	LineWidth int
	Pretty    bool
}

// NewTranslationWriterFactory configures output for `orfscan translate`.
func NewTranslationWriterFactory(c config.Config) WriterFactory {
	return newFactory(c, output.TranslationTSVHeader)
}

// NewORFWriterFactory configures output for `orfscan orfs`.
func NewORFWriterFactory(c config.Config) WriterFactory {
	return newFactory(c, output.ORFTSVHeader)
}

func newFactory(c config.Config, header string) WriterFactory {
	w := WriterFactory{Format: c.Output, LineWidth: c.LineWidth, Pretty: c.Pretty}
	if c.Header && c.Output == output.FormatText {
		w.Header = header
	}
	return w
}

func (w WriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Item, <-chan error) {
	opt := writers.Options{
		Format:    w.Format,
		Header:    w.Header,
		LineWidth: w.LineWidth,
		Buffer:    bufSize,
	}
	if w.Pretty {
		opt.Render = pretty.Render
	}
	return writers.Start(out, opt)
}

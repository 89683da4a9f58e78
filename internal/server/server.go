// Package server exposes translation and ORF location over HTTP (orfscan serve).
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"orfscan-core/codon"
	"orfscan-core/scan"
	"orfscan-core/seq"
	"orfscan/internal/config"
	"orfscan/internal/output"
	"orfscan/internal/version"
	"orfscan/pkg/api"
)

// MaxBodyBytes bounds a request body.
const MaxBodyBytes = 32 << 20

type handler struct {
	defaults config.Config
	logger   *log.Logger
}

// NewRouter builds the gin engine. defaults supplies the scan settings a
// request omits.
func NewRouter(defaults config.Config, logger *log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLog(logger))

	h := handler{defaults: defaults, logger: logger}
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": version.Version})
	})
	r.GET("/codes", h.codes)
	r.POST("/translate", h.translate)
	r.POST("/orfs", h.orfs)
	return r
}

// Run serves r on addr until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, addr string, r http.Handler, logger *log.Logger) error {
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

func requestLog(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request", "method", c.Request.Method, "path", c.Request.URL.Path,
			"status", c.Writer.Status(), "elapsed", time.Since(start))
	}
}

func (h handler) codes(c *gin.Context) {
	ids := codon.IDs()
	out := make([]api.GeneticCodeV1, 0, len(ids))
	for _, id := range ids {
		t, _ := codon.Lookup(id)
		out = append(out, api.GeneticCodeV1{ID: id, Name: t.Name})
	}
	c.JSON(http.StatusOK, out)
}

func (h handler) translate(c *gin.Context) {
	s, req, ok := h.bind(c)
	if !ok {
		return
	}
	if !s.Alphabet.IsNucleotide() {
		c.JSON(http.StatusBadRequest, api.ErrorV1{Error: scan.ErrNotNucleotide.Error()})
		return
	}
	resp := api.TranslateResponseV1{Translations: []api.TranslationV1{}}
	for _, rec := range req.Records {
		tr, err := s.Translations(scan.Record{ID: rec.ID, Seq: []byte(rec.Sequence)})
		if err != nil {
			h.fail(c, rec.ID, err)
			return
		}
		for _, t := range tr {
			resp.Translations = append(resp.Translations, output.ToAPITranslation(t))
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h handler) orfs(c *gin.Context) {
	s, req, ok := h.bind(c)
	if !ok {
		return
	}
	resp := api.ORFsResponseV1{ORFs: []api.ORFV1{}}
	for _, rec := range req.Records {
		list, err := s.ORFs(scan.Record{ID: rec.ID, Seq: []byte(rec.Sequence), ReadLength: rec.ReadLength})
		if err != nil {
			h.fail(c, rec.ID, err)
			return
		}
		for _, o := range list {
			resp.ORFs = append(resp.ORFs, output.ToAPIORF(o))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// bind decodes the request and resolves it against the server defaults.
// On failure it has already written the 400 response.
func (h handler) bind(c *gin.Context) (scan.Scanner, api.ScanRequestV1, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	var req api.ScanRequestV1
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorV1{Error: fmt.Sprintf("bad request body: %v", err)})
		return scan.Scanner{}, req, false
	}

	cfg := h.defaults
	if req.Type != "" {
		cfg.Type = req.Type
	}
	if req.GeneticCode != 0 {
		cfg.GeneticCode = req.GeneticCode
	}
	if req.MinORFLength != nil {
		cfg.MinORFLength = *req.MinORFLength
	}
	if req.AllowOpenORFs != nil {
		cfg.AllowOpenORFs = *req.AllowOpenORFs
	}
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorV1{Error: err.Error()})
		return scan.Scanner{}, req, false
	}
	s, err := cfg.Scanner()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorV1{Error: err.Error()})
		return scan.Scanner{}, req, false
	}
	return s, req, true
}

func (h handler) fail(c *gin.Context, id string, err error) {
	var ae *seq.AlphabetError
	if errors.As(err, &ae) {
		h.logger.Debug("rejected record", "id", id, "err", err)
		c.JSON(http.StatusUnprocessableEntity, api.ErrorV1{Error: err.Error(), RecordID: id})
		return
	}
	c.JSON(http.StatusInternalServerError, api.ErrorV1{Error: err.Error(), RecordID: id})
}

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nauticalab/confline/internal/schema"
	"github.com/nauticalab/confline/pkg/parser"
)

// maxRenderBody bounds POSTed config documents.
const maxRenderBody = 1 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	// sch is the loaded option schema served by this instance
	sch *schema.Schema
	// logger is the request-scoped structured logger
	logger *zap.Logger
	// version is the application version
	version string
	// gitCommit is the git commit hash of the build
	gitCommit string
	// buildTime is the time when the application was built
	buildTime string
	// goVersion is the Go version used to build the application
	goVersion string
	// provenance summarizes the config tree's repository state, if known
	provenance string
}

// NewHandler creates a new Handler instance
func NewHandler(sch *schema.Schema, logger *zap.Logger, version, gitCommit, buildTime, goVersion, provenance string) *Handler {
	return &Handler{
		sch:        sch,
		logger:     logger,
		version:    version,
		gitCommit:  gitCommit,
		buildTime:  buildTime,
		goVersion:  goVersion,
		provenance: provenance,
	}
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondSuccess(w, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	h.respondSuccess(w, VersionResponse{
		Version:    h.version,
		GitCommit:  h.gitCommit,
		BuildTime:  h.buildTime,
		GoVersion:  h.goVersion,
		Provenance: h.provenance,
	})
}

// ListOptions handles GET /api/v1/options
// Lists every declared option with its default-resolved value.
func (h *Handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	p, doc, err := h.sch.Build()
	if err != nil {
		h.logger.Error("failed to build parser from schema", zap.Error(err))
		h.respondInternalError(w, "Failed to build option registry")
		return
	}

	if err := applyAllDefaults(p); err != nil {
		h.logger.Error("failed to apply schema defaults", zap.Error(err))
		h.respondInternalError(w, "Failed to apply defaults")
		return
	}

	names := doc.Names()
	options := make([]OptionInfo, 0, len(names))
	for _, name := range names {
		entry, _ := doc.Entry(name)
		options = append(options, OptionInfo{
			Name:        name,
			Type:        entry.Spec.Type,
			Description: entry.Spec.Description,
			Default:     entry.Spec.Default,
			Expected:    entry.Spec.Expected,
			Choices:     entry.Spec.Choices,
			Value:       entry.Value(),
		})
	}

	h.respondSuccess(w, ListOptionsResponse{
		Schema:  h.sch.Name,
		Options: options,
		Count:   len(options),
	})
}

// Render handles POST /api/v1/render
// Parses the request body as a line-oriented config document against
// the schema and returns the resolved values. The optional
// ?subcommand= query parameter activates a subcommand scope first.
//
// Every request builds its own parser and document: parser nodes are
// not safe for concurrent use, so nothing is shared across requests.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRenderBody))
	if err != nil {
		h.respondBadRequest(w, "Failed to read request body")
		return
	}

	observe := parser.WithObserver(func(name, value string) {
		h.logger.Debug("applying option", zap.String("name", name), zap.String("value", value))
	})
	p, doc, err := h.sch.Build(observe)
	if err != nil {
		h.logger.Error("failed to build parser from schema", zap.Error(err))
		h.respondInternalError(w, "Failed to build option registry")
		return
	}

	if sub := r.URL.Query().Get("subcommand"); sub != "" {
		if err := p.SelectSubcommand(sub); err != nil {
			h.respondBadRequest(w, fmt.Sprintf("Unknown subcommand %q", sub))
			return
		}
	}

	if err := applyAllDefaults(p); err != nil {
		h.logger.Error("failed to apply schema defaults", zap.Error(err))
		h.respondInternalError(w, "Failed to apply defaults")
		return
	}

	if err := p.ParseReader(bytes.NewReader(body)); err != nil {
		var lineErr *parser.LineError
		if errors.As(err, &lineErr) {
			h.logger.Info("config document rejected",
				zap.Int("lineNo", lineErr.LineNo),
				zap.String("option", lineErr.Option))
			h.respondJSON(w, http.StatusUnprocessableEntity, ParseFailureResponse{
				Error:   http.StatusText(http.StatusUnprocessableEntity),
				Message: lineErr.Err.Error(),
				Line:    lineErr.Line,
				LineNo:  lineErr.LineNo,
				Option:  lineErr.Option,
			})
			return
		}
		h.respondBadRequest(w, err.Error())
		return
	}

	h.respondSuccess(w, RenderResponse{
		Schema: h.sch.Name,
		Values: doc.Resolved(),
	})
}

// applyAllDefaults applies defaults on the root node and every
// subcommand node, so listed and rendered values start from the
// declared baseline.
func applyAllDefaults(p *parser.Parser) error {
	if err := p.ApplyDefaults(); err != nil {
		return err
	}
	for _, child := range p.Subcommands() {
		if err := child.ApplyDefaults(); err != nil {
			return err
		}
	}
	return nil
}

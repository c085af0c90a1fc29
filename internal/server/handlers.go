package server

import (
	"fmt"
	"net/http"

	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/logging"
	"github.com/rgehrsitz/rptax/internal/output"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ComputationIDHeader carries the identifier assigned to each computation
const ComputationIDHeader = "X-Computation-ID"

type computeRequest struct {
	Input        *domain.TaxReturnInput `json:"input"`
	PriorYearTax *decimal.Decimal       `json:"prior_year_tax,omitempty"`
}

type computeResponse struct {
	ComputationID string                  `json:"computation_id"`
	Result        *domain.TaxReturnResult `json:"result"`
	Warnings      []string                `json:"warnings,omitempty"`
}

type tableSummary struct {
	Year          int                 `json:"year"`
	FilingStatus  domain.FilingStatus `json:"filing_status"`
	SchemaVersion string              `json:"schema_version"`
}

var contentTypes = map[string]string{
	"console": "text/plain; charset=utf-8",
	"summary": "text/plain; charset=utf-8",
	"yaml":    "application/yaml",
	"csv":     "text/csv",
	"html":    "text/html; charset=utf-8",
	"pdf":     "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	configs := s.engine.Registry.Configurations()
	out := make([]tableSummary, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, tableSummary{Year: cfg.Year, FilingStatus: cfg.FilingStatus, SchemaVersion: cfg.SchemaVersion})
	}
	writeJSON(w, http.StatusOK, map[string]any{"tables": out})
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	var formatter output.Formatter
	if name := r.URL.Query().Get("format"); name != "" && name != "json" {
		if formatter = output.GetFormatterByName(name); formatter == nil {
			writeError(w, r, domain.NewMalformedInput("format", "unknown report format %q", name))
			return
		}
	}

	var req computeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Input == nil {
		writeError(w, r, domain.NewMalformedInput("input", "input is required"))
		return
	}
	priorYearTax := decimal.Zero
	if req.PriorYearTax != nil {
		priorYearTax = *req.PriorYearTax
	}

	id := s.idGen()
	logger = logger.With(zap.String("computation_id", id), zap.Int("tax_year", req.Input.TaxYear))

	result, err := s.engine.ComputeReturn(r.Context(), req.Input, priorYearTax)
	if err != nil {
		logger.Warn("computation rejected", zap.Error(err), zap.String("code", string(domain.CodeOf(err))))
		writeError(w, r, err)
		return
	}
	logger.Info("computation finished",
		zap.String("federal_total_tax", result.Federal.TotalTax.String()),
		zap.String("california_total_tax", result.California.TotalTax.String()))

	w.Header().Set(ComputationIDHeader, id)
	if formatter != nil {
		data, err := formatter.Format(result)
		if err != nil {
			logger.Error("report rendering failed", zap.Error(err))
			writeError(w, r, fmt.Errorf("render %s: %w", formatter.Name(), err))
			return
		}
		w.Header().Set("Content-Type", contentTypes[formatter.Name()])
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	writeJSON(w, http.StatusOK, computeResponse{
		ComputationID: id,
		Result:        result,
		Warnings:      output.Warnings(result),
	})
}

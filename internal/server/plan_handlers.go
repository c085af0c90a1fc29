package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rgehrsitz/rptax/internal/breakeven"
	"github.com/rgehrsitz/rptax/internal/compare"
	"github.com/rgehrsitz/rptax/internal/domain"
	"github.com/rgehrsitz/rptax/internal/logging"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type compareRequest struct {
	Input        *domain.TaxReturnInput `json:"input"`
	PriorYearTax *decimal.Decimal       `json:"prior_year_tax,omitempty"`
	Templates    []string               `json:"templates,omitempty"`
	Transforms   []string               `json:"transforms,omitempty"`
}

type solveRequest struct {
	Input        *domain.TaxReturnInput `json:"input"`
	PriorYearTax *decimal.Decimal       `json:"prior_year_tax,omitempty"`
	Lever        string                 `json:"lever,omitempty"`
	Goal         string                 `json:"goal"`
	Target       *decimal.Decimal       `json:"target,omitempty"`
	MinAmount    *decimal.Decimal       `json:"min_amount,omitempty"`
	MaxAmount    *decimal.Decimal       `json:"max_amount,omitempty"`
}

// asMalformed reports planning errors that carry no tax error code as bad requests
func asMalformed(field string, err error) error {
	var te *domain.TaxError
	if errors.As(err, &te) {
		return err
	}
	return domain.NewMalformedInput(field, "%v", err)
}

func orZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeError(w, r, domain.NewMalformedInput("", "invalid request body: %v", err))
		return false
	}
	return true
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	var req compareRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Input == nil {
		writeError(w, r, domain.NewMalformedInput("input", "input is required"))
		return
	}
	if len(req.Templates) == 0 && len(req.Transforms) == 0 {
		writeError(w, r, domain.NewMalformedInput("templates", "at least one template or transform is required"))
		return
	}

	set, err := compare.NewCompareEngine(s.engine).Compare(r.Context(), req.Input, compare.CompareOptions{
		Templates:    req.Templates,
		Transforms:   req.Transforms,
		PriorYearTax: orZero(req.PriorYearTax),
	})
	if err != nil {
		logger.Warn("comparison rejected", zap.Error(err))
		writeError(w, r, asMalformed("transforms", err))
		return
	}
	logger.Info("comparison finished", zap.Int("alternatives", len(set.AlternativeResults)))
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	var req solveRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Input == nil {
		writeError(w, r, domain.NewMalformedInput("input", "input is required"))
		return
	}
	goal, err := breakeven.ParseGoal(req.Goal)
	if err != nil {
		writeError(w, r, domain.NewMalformedInput("goal", "%v", err))
		return
	}

	constraints := breakeven.DefaultConstraints()
	if req.MinAmount != nil {
		constraints.MinAmount = *req.MinAmount
	}
	if req.MaxAmount != nil {
		constraints.MaxAmount = *req.MaxAmount
	}
	constraints.Target = req.Target

	solver := breakeven.NewDefaultSolver(s.engine)
	if req.Lever == "" {
		multi, err := solver.OptimizeAllLevers(r.Context(), req.Input, goal, constraints, orZero(req.PriorYearTax))
		if err != nil {
			logger.Warn("solve rejected", zap.Error(err))
			writeError(w, r, asMalformed("goal", err))
			return
		}
		writeJSON(w, http.StatusOK, multi)
		return
	}

	lever, err := breakeven.ParseLever(req.Lever)
	if err != nil {
		writeError(w, r, domain.NewMalformedInput("lever", "%v", err))
		return
	}
	result, err := solver.Optimize(r.Context(), req.Input, breakeven.OptimizationRequest{
		Lever:        lever,
		Goal:         goal,
		Constraints:  constraints,
		PriorYearTax: orZero(req.PriorYearTax),
	})
	if err != nil {
		logger.Warn("solve rejected", zap.Error(err))
		writeError(w, r, asMalformed("constraints", err))
		return
	}
	logger.Info("solve finished", zap.String("lever", string(lever)), zap.String("amount", result.Amount.String()))
	writeJSON(w, http.StatusOK, result)
}

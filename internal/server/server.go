// Package server provides the HTTP handler that serves the calculator web
// UI and its JSON evaluation API.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/opsforge/decision-impact/internal/config"
	"github.com/opsforge/decision-impact/internal/decision"
	"github.com/opsforge/decision-impact/pkg/constants"
	"github.com/opsforge/decision-impact/pkg/format"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// evaluation API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Evaluation endpoint; the UI posts the full input set on every change
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)

	// Decision selector metadata
	mux.HandleFunc("/api/decisions", h.handleDecisions)

	// Scenario serialization endpoint for downloads
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type evaluateRequest struct {
	Decision string                 `json:"decision"`
	Inputs   map[string]interface{} `json:"inputs"`
}

type evaluateResponse struct {
	Decision    string            `json:"decision"`
	Label       string            `json:"label"`
	Implemented bool              `json:"implemented"`
	Ready       bool              `json:"ready"`
	Result      *decision.Result  `json:"result,omitempty"`
	Display     map[string]string `json:"display,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
	Duration    string            `json:"duration"`
}

type decisionInfo struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Implemented bool   `json:"implemented"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	req, ok := h.decodeRequest(w, r, "server.handleEvaluate")
	if !ok {
		return
	}

	kind := decision.Kind(req.Decision)
	desc, known := decision.Lookup(kind)
	inputs := decision.InputsFromMap(req.Inputs)
	ready := inputs.Ready()

	cfg := config.Configuration{Decision: req.Decision, Parameters: config.ParametersFromInputs(inputs)}
	warnings := cfg.ValidateConfiguration()

	response := evaluateResponse{
		Decision:    req.Decision,
		Label:       desc.Label,
		Implemented: known && desc.Implemented(),
		Ready:       ready,
		Warnings:    warnings,
	}

	// Results are always recomputed from the posted inputs; readiness only
	// gates whether they are exposed.
	if ready {
		if result := decision.Evaluate(kind, inputs); result != nil {
			response.Result = result
			response.Display = displayStrings(result)
			response.Summary = result.Summary()
		}
	}

	elapsed := time.Since(start)
	response.Duration = elapsed.String()

	h.logger.Info("decision evaluated",
		zap.String("op", "server.handleEvaluate"),
		zap.String("decision", req.Decision),
		zap.Bool("ready", ready),
		zap.Bool("implemented", response.Implemented),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleDecisions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	kinds := decision.Kinds()
	infos := make([]decisionInfo, 0, len(kinds))
	for _, d := range kinds {
		infos = append(infos, decisionInfo{
			ID:          string(d.ID),
			Label:       d.Label,
			Implemented: d.Implemented(),
		})
	}

	h.writeJSON(w, http.StatusOK, infos)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	req, ok := h.decodeRequest(w, r, "server.handleExport")
	if !ok {
		return
	}

	cfg := config.Configuration{
		Decision:   req.Decision,
		Parameters: config.ParametersFromInputs(decision.InputsFromMap(req.Inputs)),
	}

	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode scenario: %v", err), "server.handleExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"scenarioYaml": string(yamlBytes),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, op string) (evaluateRequest, bool) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return evaluateRequest{}, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return evaluateRequest{}, false
	}
	if req.Inputs == nil {
		req.Inputs = make(map[string]interface{})
	}
	return req, true
}

// displayStrings pre-formats every displayed metric so the UI never
// formats money itself.
func displayStrings(res *decision.Result) map[string]string {
	display := map[string]string{
		"netImpactPerWeek": format.Money(res.NetImpactPerWeek),
		"totalImpact":      format.Money(res.TotalImpact),
	}

	if ot := res.Overtime; ot != nil {
		display["otLaborCost"] = format.Money(ot.OvertimeLaborCost)
		display["perfDeltaUnits"] = format.Units(ot.PerfDeltaUnits)
		display["scrapDeltaUnits"] = format.Units(-ot.ScrapDeltaUnits)
		display["downtimeDeltaUnits"] = format.Units(-ot.DowntimeDeltaUnits)
		display["deltaGoodUnits"] = format.Units(ot.DeltaGoodUnits)
		display["profitFromUnits"] = format.Money(ot.ProfitFromUnits)
	}

	if cx := res.DelayCapex; cx != nil {
		display["savingsPerWeek"] = format.Money(cx.SavingsPerWeek)
		display["missedBenefitWeeks"] = fmt.Sprintf("%.1f", cx.MissedBenefitWeeks)
		display["lostSavingsWithinHorizon"] = format.Money(cx.LostSavingsWithinHorizon)
		display["carryingCostWithinHorizon"] = format.Money(cx.CarryingCostWithinHorizon)
	}

	return display
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

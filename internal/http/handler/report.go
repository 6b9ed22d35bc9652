package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"eoatracker/internal/core"
	"eoatracker/internal/http/handler/middleware"
	"eoatracker/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetReport    = "GET /eoa/report"
	GetContracts = "GET /eoa/contracts/{chainID}"
	GetHealth    = "GET /healthz"
)

type ReportHandler struct {
	logs    *zap.SugaredLogger
	reports ReportService
}

func NewReportHandler(logger *zap.SugaredLogger, reportService ReportService) *ReportHandler {
	return &ReportHandler{
		logs:    logger,
		reports: reportService,
	}
}

// HandleGetReport serves the activity report of every chain, or of the
// chains named by repeated chainId query parameters.
func (h *ReportHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not build report",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetReport, "request_id", requestId)
		return
	}

	reportRequest := payload.ReportRequest{
		ChainIDs: values["chainId"],
	}
	err = reportRequest.Validate()
	var chainIDs map[int64]struct{}
	if err == nil {
		chainIDs, err = reportRequest.IDs()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", GetReport,
			"request_id", requestId)
		return
	}

	reports, err := h.reports.Report(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not build report",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to build report",
			"error", err,
			"handler", GetReport,
			"request_id", requestId)
		return
	}

	if len(chainIDs) > 0 {
		selected := make([]core.ChainReport, 0, len(chainIDs))
		for _, report := range reports {
			if _, ok := chainIDs[report.ChainID]; ok {
				selected = append(selected, report)
			}
		}
		reports = selected
	}

	h.logs.Infow("report built",
		"chains", len(reports),
		"handler", GetReport,
		"request_id", requestId)

	resp := map[string][]core.ChainReport{
		"reports": reports,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// HandleGetContracts serves the most used contracts of one chain.
func (h *ReportHandler) HandleGetContracts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	contractsRequest := payload.ContractsRequest{
		ChainID: r.PathValue("chainID"),
	}
	err := contractsRequest.Validate()
	var chainID int64
	if err == nil {
		chainID, err = contractsRequest.ID()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", GetContracts,
			"request_id", requestId)
		return
	}

	contracts, err := h.reports.ChainContracts(r.Context(), chainID)
	if err != nil {
		resp := Response{
			Message: "Could not rank contracts",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrChainNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to rank contracts",
			"error", err,
			"chain_id", chainID,
			"handler", GetContracts,
			"request_id", requestId)
		return
	}

	resp := struct {
		ChainID   int64                `json:"chainId"`
		Contracts []core.ContractUsage `json:"contracts"`
	}{
		ChainID:   chainID,
		Contracts: contracts,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ReportHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Message: "ok"}, http.StatusOK, middleware.RequestID(r.Context()))
}

func (h *ReportHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

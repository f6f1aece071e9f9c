package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/idalloc"
	"github.com/heartmarshall/wosa-backend/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	GenerateReport(ctx context.Context, input report.GenerateInput) (*domain.Report, error)
	GetReport(ctx context.Context, id int64) (*domain.Report, error)
	ListReports(ctx context.Context, input report.ListInput) ([]domain.Report, error)
	ListReportItems(ctx context.Context, reportID int64) ([]domain.ReportItem, error)
}

// idService defines the minimal interface needed for id allocation.
type idService interface {
	NextAvailableID(ctx context.Context, input idalloc.Input) (*idalloc.Result, error)
}

// ReportHandler serves report generation and the id allocation helper.
type ReportHandler struct {
	reports reportService
	ids     idService
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports reportService, ids idService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, ids: ids, log: logger.With("handler", "reports")}
}

type generateReportRequest struct {
	ReportType  int            `json:"report_type"`
	Parameters  map[string]any `json:"parameters"`
	GeneratedBy *string        `json:"generated_by"`
}

// Generate handles POST /wosa/reports.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	params := req.Parameters
	if req.GeneratedBy != nil {
		if params == nil {
			params = map[string]any{}
		}
		if _, set := params["generated_by"]; !set {
			params["generated_by"] = *req.GeneratedBy
		}
	}

	rep, err := h.reports.GenerateReport(r.Context(), report.GenerateInput{Type: req.ReportType, Parameters: params})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(rep))
}

// List handles GET /wosa/reports?skip&limit&report_type.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	typ, err := queryInt(r, "report_type")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reports, err := h.reports.ListReports(r.Context(), report.ListInput{Type: typ, Page: page})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(reports, func(rep domain.Report) reportResponse { return toReportResponse(&rep) }))
}

// Get handles GET /wosa/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rep, err := h.reports.GetReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Items handles GET /wosa/reports/{id}/items.
func (h *ReportHandler) Items(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.reports.ListReportItems(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(items, toReportItemResponse))
}

type generateIDRequest struct {
	Entity string `json:"entity"`
	ID     int64  `json:"id"`
}

// GenerateID handles POST /wosa/generate-id.
func (h *ReportHandler) GenerateID(w http.ResponseWriter, r *http.Request) {
	var req generateIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.ids.NextAvailableID(r.Context(), idalloc.Input{Entity: req.Entity, RequestedID: req.ID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIDResponse(res))
}

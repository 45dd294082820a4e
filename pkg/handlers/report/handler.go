package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/secnet-tools/nsg-report/pkg/models/api"
	"github.com/secnet-tools/nsg-report/pkg/models/domain"
	storemodels "github.com/secnet-tools/nsg-report/pkg/models/store"
	"github.com/secnet-tools/nsg-report/pkg/services/analysis"
	"github.com/secnet-tools/nsg-report/pkg/services/nsg"
	"github.com/secnet-tools/nsg-report/pkg/services/report/export"
	"github.com/secnet-tools/nsg-report/pkg/store/duckdb/history"
)

const defaultHistoryLimit = 50

type Handler struct {
	analysis  analysis.Explorer
	inventory nsg.Explorer
	history   history.Store
	now       func() time.Time
}

func NewHandler(analysisExplorer analysis.Explorer, inventory nsg.Explorer, historyStore history.Store) *Handler {
	return &Handler{
		analysis:  analysisExplorer,
		inventory: inventory,
		history:   historyStore,
		now:       time.Now,
	}
}

func (h *Handler) ListNSGs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	refs, err := h.inventory.ListSecurityGroups(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list NSGs")
		writeError(w, http.StatusBadGateway, "failed to list network security groups")
		return
	}

	response := make([]api.NSG, 0, len(refs))
	for _, ref := range refs {
		response = append(response, api.NSG{
			Name:          ref.Name,
			ResourceGroup: ref.ResourceGroup,
			Location:      ref.Location,
		})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid export request body")
		return
	}
	if len(req.NSGs) == 0 {
		writeError(w, http.StatusBadRequest, export.ErrEmptySelection.Error())
		return
	}

	results := make([]*domain.AnalysisResult, 0, len(req.NSGs))
	for _, name := range req.NSGs {
		res, err := h.analysis.GetAnalysis(ctx, name)
		if err != nil {
			logger.Error().Err(err).Str("nsg", name).Msg("failed to fetch analysis")
			writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch analysis for %q", name))
			return
		}
		results = append(results, res)
	}

	file, err := export.Delimited(results, h.now())
	if err != nil {
		h.writeExportError(w, logger, err)
		return
	}

	subject := req.NSGs[0]
	if len(req.NSGs) > 1 {
		subject = fmt.Sprintf("%d NSGs", len(req.NSGs))
	}
	h.record(r, subject, file)
	deliver(w, file)
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid export request body")
		return
	}
	if req.NSG == "" {
		writeError(w, http.StatusBadRequest, export.ErrEmptySelection.Error())
		return
	}

	res, err := h.analysis.GetAnalysis(ctx, req.NSG)
	if err != nil {
		logger.Error().Err(err).Str("nsg", req.NSG).Msg("failed to fetch analysis")
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch analysis for %q", req.NSG))
		return
	}

	file, err := export.Document(res, h.now())
	if err != nil {
		h.writeExportError(w, logger, err)
		return
	}

	h.record(r, req.NSG, file)
	deliver(w, file)
}

func (h *Handler) ListExports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.history == nil {
		writeJSON(w, logger, []api.ExportRecord{})
		return
	}

	records, err := h.history.List(ctx, defaultHistoryLimit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list export history")
		writeError(w, http.StatusInternalServerError, "failed to list export history")
		return
	}

	response := make([]api.ExportRecord, 0, len(records))
	for _, rec := range records {
		response = append(response, api.ExportRecord{
			Subject:     rec.Subject,
			Format:      rec.Format,
			FileName:    rec.FileName,
			SizeBytes:   rec.SizeBytes,
			GeneratedAt: rec.GeneratedAt,
		})
	}
	writeJSON(w, logger, response)
}

func (h *Handler) writeExportError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, export.ErrEmptySelection):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, export.ErrMissingAnalysis):
		writeError(w, http.StatusPreconditionFailed, err.Error())
	default:
		logger.Error().Err(err).Msg("export failed")
		writeError(w, http.StatusInternalServerError, export.ErrRenderFailed.Error())
	}
}

// record appends to the export history; failures are logged, never surfaced.
func (h *Handler) record(r *http.Request, subject string, file *export.File) {
	if h.history == nil {
		return
	}
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	format := "csv"
	switch file.ContentType {
	case "application/pdf":
		format = "pdf"
	case "application/zip":
		format = "zip"
	}
	err := h.history.Add(ctx, storemodels.ExportRecord{
		Subject:     subject,
		Format:      format,
		FileName:    file.Name,
		SizeBytes:   int64(len(file.Data)),
		GeneratedAt: h.now(),
	})
	if err != nil {
		logger.Error().Err(err).Str("file", file.Name).Msg("failed to record export")
	}
}

func deliver(w http.ResponseWriter, file *export.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	_, _ = w.Write(file.Data)
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: msg})
}

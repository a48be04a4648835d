package handlers

import (
	"bytes"
	"net/http"

	"github.com/propdesk/buyer-leads-api/internal/infra/http/middleware"
	"github.com/propdesk/buyer-leads-api/internal/usecase"
)

// maxImportBody caps the upload body well above the 200-row limit so the
// row-count check, not the transport, decides oversized files.
const maxImportBody = 5 << 20

type ImportExportHandler struct {
	ImportUC *usecase.ImportCSVUseCase
	ExportUC *usecase.ExportCSVUseCase
}

func NewImportExportHandler(importUC *usecase.ImportCSVUseCase, exportUC *usecase.ExportCSVUseCase) *ImportExportHandler {
	return &ImportExportHandler{ImportUC: importUC, ExportUC: exportUC}
}

// HandleImport accepts the CSV either as a multipart "file" part or as the
// raw request body.
func (h *ImportExportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "no authenticated user")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportBody)

	reader := r.Body
	if err := r.ParseMultipartForm(maxImportBody); err == nil {
		file, _, ferr := r.FormFile("file")
		if ferr != nil {
			writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "no file provided")
			return
		}
		defer file.Close()
		reader = file
	}

	result, err := h.ImportUC.Execute(r.Context(), reader, actor)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.RecordImportRows(result.SuccessCount, len(result.Errors))
	for range result.Created {
		middleware.RecordLeadCreated("csv_import")
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ImportExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	input := usecase.ListBuyersInput{
		Search:       params.Get("search"),
		City:         params.Get("city"),
		PropertyType: params.Get("propertyType"),
		Status:       params.Get("status"),
		Timeline:     params.Get("timeline"),
		SortBy:       params.Get("sortBy"),
		SortOrder:    params.Get("sortOrder"),
	}

	// Buffer the file before committing headers. The export is capped, so
	// holding it in memory is fine, and a repository error mid-stream would
	// otherwise leave the client a truncated 200.
	var buf bytes.Buffer
	if err := h.ExportUC.Execute(r.Context(), input, &buf); err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="buyers.csv"`)
	w.Write(buf.Bytes())
}

package http

import (
	"fmt"
	"net/http"
	"time"

	"calcjus/export"
	"calcjus/repository"
)

// ExportHandler serve o último registro de cálculo: cru em JSON ou
// renderizado como relatório.
type ExportHandler struct {
	records  repository.RecordRepository
	renderer export.Renderer
	now      func() time.Time
}

func NewExportHandler(records repository.RecordRepository) *ExportHandler {
	return &ExportHandler{
		records:  records,
		renderer: export.NewRenderer(),
		now:      time.Now,
	}
}

// LastRecord atende GET /api/v1/calculations/last.
func (h *ExportHandler) LastRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := h.records.Read()
	if !ok {
		writeError(w, http.StatusNotFound, "nenhum cálculo realizado")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Report atende GET /api/v1/export/report?format=txt|csv&title=...
func (h *ExportHandler) Report(w http.ResponseWriter, r *http.Request) {
	record, ok := h.records.Read()
	if !ok {
		writeError(w, http.StatusNotFound, "nenhum cálculo para exportar")
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = "Relatorio de Calculo"
	}
	generatedAt := h.now()

	switch r.URL.Query().Get("format") {
	case "csv":
		data, err := h.renderer.CSV(record, title, generatedAt)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "falha ao gerar o relatório")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "relatorio.csv"))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	case "", "txt":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, h.renderer.Text(record, title, generatedAt))
	default:
		writeError(w, http.StatusBadRequest, "formato não suportado")
	}
}

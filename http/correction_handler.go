package http

import (
	"net/http"

	"calcjus/domain"
	"calcjus/service"
)

type CorrectionHandler struct {
	service *service.CorrectionService
}

func NewCorrectionHandler(service *service.CorrectionService) *CorrectionHandler {
	return &CorrectionHandler{service: service}
}

// CalculateCivil atende POST /api/v1/calculations/civil.
func (h *CorrectionHandler) CalculateCivil(w http.ResponseWriter, r *http.Request) {
	input, ok := decode[domain.CorrectionInput](w, r)
	if !ok {
		return
	}
	result, err := h.service.CalculateCivil(input)
	writeResult(w, result, err)
}

// CalculateCriminal atende POST /api/v1/calculations/criminal.
func (h *CorrectionHandler) CalculateCriminal(w http.ResponseWriter, r *http.Request) {
	input, ok := decode[domain.CorrectionInput](w, r)
	if !ok {
		return
	}
	result, err := h.service.CalculateCriminal(input)
	writeResult(w, result, err)
}

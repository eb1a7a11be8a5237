package http

import (
	"net/http"

	"calcjus/domain"
	"calcjus/service"
)

type LaborHandler struct {
	service *service.LaborService
}

func NewLaborHandler(service *service.LaborService) *LaborHandler {
	return &LaborHandler{service: service}
}

// Calculate atende POST /api/v1/calculations/labor.
func (h *LaborHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	input, ok := decode[domain.LaborInput](w, r)
	if !ok {
		return
	}
	result, err := h.service.Calculate(input)
	writeResult(w, result, err)
}

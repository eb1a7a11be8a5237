package http

import (
	"net/http"

	"calcjus/domain"
	"calcjus/service"
)

type DeadlineHandler struct {
	service *service.DeadlineService
}

func NewDeadlineHandler(service *service.DeadlineService) *DeadlineHandler {
	return &DeadlineHandler{service: service}
}

// Calculate atende POST /api/v1/calculations/deadline.
func (h *DeadlineHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	input, ok := decode[domain.DeadlineInput](w, r)
	if !ok {
		return
	}
	result, err := h.service.Calculate(input)
	writeResult(w, result, err)
}

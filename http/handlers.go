// Package http expõe as calculadoras por JSON sobre chi. Os corpos chegam
// com os campos como o formulário envia: valores com vírgula decimal e
// datas ISO; a interpretação fica com os serviços.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"calcjus/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeResult mapeia o desfecho de um serviço: dados incompletos viram 422
// (o registro anterior permanece intocado), qualquer outra falha vira 400.
func writeResult(w http.ResponseWriter, result any, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrDadosIncompletos) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var input T
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return input, false
	}
	return input, true
}

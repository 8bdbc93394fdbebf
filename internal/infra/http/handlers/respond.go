package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/growthx-admin/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUseCaseError maps the use case error taxonomy onto HTTP: domain
// errors are the caller's fault, technical errors are ours.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("❌ [HTTP] %v", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

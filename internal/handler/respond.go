package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yourorg/starchart/internal/contracts"
)

// demoUserID is the caller identity for all favorite operations. There is no
// session layer; every request acts as the seeded demo user.
const demoUserID = 1

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeInvalidInput(w http.ResponseWriter, fieldErrs []contracts.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"message": "Invalid input",
		"errors":  fieldErrs,
	})
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/DenizAltinisik/internship-management/domain"
)

type errorResp struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeErrorResp(err error, w http.ResponseWriter) {
	if err == nil {
		return
	}

	var status int
	var code string

	switch err {
	case domain.ErrMissingFields(), domain.ErrInvalidStatus(), domain.ErrInvalidRole(), domain.ErrEmailRequired():
		status, code = http.StatusBadRequest, "validation_error"
	case domain.ErrEmailTaken():
		status, code = http.StatusConflict, "conflict"
	case domain.ErrInvalidCredentials(), domain.ErrInvalidToken():
		status, code = http.StatusUnauthorized, "auth_error"
	case domain.ErrForbidden():
		status, code = http.StatusForbidden, "forbidden"
	case domain.ErrUserNotFound(), domain.ErrProjectNotFound(), domain.ErrTaskNotFound():
		status, code = http.StatusNotFound, "not_found"
	default:
		// Internal detail never leaves the gateway.
		log.Printf("Unexpected error: %v", err)
		status, code = http.StatusInternalServerError, "internal"
		err = domain.ErrInternal()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(errorResp{Code: code, Error: err.Error()}); encodeErr != nil {
		log.Printf("Error writing response: %v", encodeErr)
	}
}

func writeResp(resp any, statusCode int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if resp == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func readReq(req any, r *http.Request, w http.ResponseWriter) error {
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeErrorMsg(w, http.StatusBadRequest, "validation_error", "unable to decode json")
	}
	return err
}

func writeErrorMsg(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorResp{Code: code, Error: message}); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

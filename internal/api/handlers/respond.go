package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"naccost-lab/internal/domain/models"
)

// errorResponse is the JSON error envelope
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error envelope
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps a domain error to its HTTP status. Unknown
// catalog ids are 404, bad scenario inputs are 400, a comparison set too
// small to rank is 422, anything else is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		unknownVendor    *models.UnknownVendorError
		unknownIndustry  *models.UnknownIndustryError
		unknownFramework *models.UnknownFrameworkError
		invalidInput     *models.InvalidInputError
		insufficientSet  *models.InsufficientComparisonSetError
	)

	switch {
	case errors.As(err, &unknownVendor),
		errors.As(err, &unknownIndustry),
		errors.As(err, &unknownFramework):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &invalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &insufficientSet):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes a request body, rejecting unknown garbage early
func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dest)
}

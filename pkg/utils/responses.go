package utils

import (
	"encoding/json"
	"net/http"
)

// All API output uses one envelope shape:
//
//	{"result": bool, "status": code, "message": msg, <key>: payload}
//
// The payload key is context-specific ("patient", "users", "stats", ...)
// rather than a fixed "data" key. The frontend depends on this shape.

func writeEnvelope(w http.ResponseWriter, code int, result bool, message string, key string, payload any) {
	envelope := map[string]any{
		"result":  result,
		"status":  code,
		"message": message,
	}
	if key != "" {
		envelope[key] = payload
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(envelope)
}

// ------------- Success responses -------------

// ResponseData returns 200 OK with a named payload
func ResponseData(w http.ResponseWriter, key string, payload any, message string) {
	writeEnvelope(w, http.StatusOK, true, message, key, payload)
}

// ResponseCreated returns 201 Created with a named payload
func ResponseCreated(w http.ResponseWriter, key string, payload any, message string) {
	writeEnvelope(w, http.StatusCreated, true, message, key, payload)
}

// ResponseSuccess returns 200 OK with an empty data payload
func ResponseSuccess(w http.ResponseWriter, message string) {
	writeEnvelope(w, http.StatusOK, true, message, "data", struct{}{})
}

// ------------- Error responses -------------

// ResponseError returns an error envelope with the given status code
func ResponseError(w http.ResponseWriter, code int, message string) {
	writeEnvelope(w, code, false, message, "data", struct{}{})
}

// ResponseBadRequest returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// ResponseUnauthorized returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusUnauthorized, message)
}

// ResponseForbidden returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusForbidden, message)
}

// ResponseNotFound returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// ResponseValidationFailed returns 422 with a field-keyed error map
func ResponseValidationFailed(w http.ResponseWriter, message string, fields map[string]string) {
	if fields == nil {
		fields = map[string]string{}
	}
	writeEnvelope(w, http.StatusUnprocessableEntity, false, message, "errors", fields)
}

// ResponseInternalError returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusInternalServerError, message)
}

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestResponseData(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseData(rec, "patient", map[string]string{"name": "Mona"}, "Patient retrieved successfully")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if body["result"] != true {
		t.Fatalf("expected result true, got %v", body["result"])
	}
	if body["status"] != float64(http.StatusOK) {
		t.Fatalf("expected status 200, got %v", body["status"])
	}
	if body["message"] != "Patient retrieved successfully" {
		t.Fatalf("wrong message: %v", body["message"])
	}
	payload, ok := body["patient"].(map[string]any)
	if !ok || payload["name"] != "Mona" {
		t.Fatalf("payload not under its named key: %v", body)
	}
}

func TestResponseCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseCreated(rec, "user", map[string]string{"name": "Ahmed"}, "User created successfully")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["status"] != float64(http.StatusCreated) {
		t.Fatalf("expected status 201 in body, got %v", body["status"])
	}
}

func TestResponseErrorFamily(t *testing.T) {
	cases := []struct {
		name string
		fn   func(http.ResponseWriter, string)
		code int
	}{
		{"bad request", ResponseBadRequest, http.StatusBadRequest},
		{"unauthorized", ResponseUnauthorized, http.StatusUnauthorized},
		{"forbidden", ResponseForbidden, http.StatusForbidden},
		{"not found", ResponseNotFound, http.StatusNotFound},
		{"internal", ResponseInternalError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.fn(rec, "boom")

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			body := decodeEnvelope(t, rec)
			if body["result"] != false {
				t.Fatalf("expected result false, got %v", body["result"])
			}
			if body["status"] != float64(tc.code) {
				t.Fatalf("expected status %d in body, got %v", tc.code, body["status"])
			}
			if body["message"] != "boom" {
				t.Fatalf("wrong message: %v", body["message"])
			}
		})
	}
}

func TestResponseValidationFailed(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseValidationFailed(rec, "Validation failed", map[string]string{"ssn": "Must be exactly 14 characters"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	fields, ok := body["errors"].(map[string]any)
	if !ok || fields["ssn"] != "Must be exactly 14 characters" {
		t.Fatalf("errors map missing: %v", body)
	}

	// nil field maps still serialize as an object
	rec = httptest.NewRecorder()
	ResponseValidationFailed(rec, "Validation failed", nil)
	body = decodeEnvelope(t, rec)
	if _, ok := body["errors"].(map[string]any); !ok {
		t.Fatalf("expected empty errors object, got %v", body["errors"])
	}
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorBody is the shape of every failure response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders v with the given status.
func JSON(status int, v any) Response {
	return jsonResponse{status: status, body: v}
}

// Created renders v with 201 Created.
func Created(v any) Response {
	return JSON(http.StatusCreated, v)
}

// Error renders {"error": code, "message": ..., "details": ...}.
func Error(status int, code, message string, details any) Response {
	return JSON(status, ErrorBody{Error: code, Message: message, Details: details})
}

// ValidationFailed renders a validation report as 422 Unprocessable Entity:
//
//	{"error": "validation_failed", "details": {"byKey": {...}, "general": [...]}}
func ValidationFailed(errs *validator.Errors) Response {
	return JSON(http.StatusUnprocessableEntity, ErrorBody{Error: CodeValidationFailed, Details: errs})
}

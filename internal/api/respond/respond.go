// Package respond contains small helpers for writing JSON responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type dataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 response with the value wrapped in a success envelope.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, dataResponse{Success: true, Data: v})
}

// Created writes a 201 response with the value wrapped in a success envelope.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, dataResponse{Success: true, Data: v})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, errorResponse{Success: false, Error: err.Error()})
}

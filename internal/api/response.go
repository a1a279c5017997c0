package api

import (
	"encoding/json"
	"net/http"

	"github.com/jonier/api-store/internal/apperr"
)

// Response is the single success envelope: {status, data}. The original
// controllers drifted between several shapes; this one is the contract now.
type Response struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

type ResponseError struct {
	Status int       `json:"status"`
	Error  ErrorBody `json:"error"`
}

type ErrorBody struct {
	Messages []string `json:"messages"`
}

func SuccessJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Status: status, Data: data})
}

// ErrorJSON maps any error onto the error envelope. Non-application errors
// collapse to a generic 500 so internal detail never reaches the client.
func ErrorJSON(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	ErrorJSONMessages(w, int(code), apperr.MessagesOf(err))
}

func ErrorJSONMessages(w http.ResponseWriter, status int, messages []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ResponseError{
		Status: status,
		Error:  ErrorBody{Messages: messages},
	})
}

package response

import (
	"encoding/json"
	"net/http"
)

// messageBody is the uniform error/notice shape: {"message": ...}. The value
// is a string for simple failures and a field->reason map for validation
// failures.
type messageBody struct {
	Message interface{} `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message interface{}) {
	JSON(w, statusCode, messageBody{Message: message})
}

func BadRequest(w http.ResponseWriter, message interface{}) {
	Message(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Message(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Message(w, http.StatusNotFound, message)
}

func TooManyRequests(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Too many requests"
	}
	Message(w, http.StatusTooManyRequests, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Message(w, http.StatusInternalServerError, message)
}

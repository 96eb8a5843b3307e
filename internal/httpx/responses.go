package httpx

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every non-entity response: delete
// acknowledgments and all failures. Clients assert on substrings of Message.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status code. Success
// bodies are the bare entity (or array); the contract has no envelope.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONMessage writes a message-only body with the given status code.
func JSONMessage(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

// JSONError is JSONMessage under a name that reads right at failure sites.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	JSONMessage(w, statusCode, message)
}

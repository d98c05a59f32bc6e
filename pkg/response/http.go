package response

import (
	"encoding/json"
	"net/http"
)

// Status returns the HTTP status of res. successStatus is used for a
// successful outcome (200 or 201).
func Status[T any](res Result[T], successStatus int) int {
	if res.Success {
		return successStatus
	}
	return res.Kind.HTTPStatus()
}

// Write encodes res with the status derived from its kind.
func Write[T any](w http.ResponseWriter, res Result[T], successStatus int) {
	WriteJSON(w, Status(res, successStatus), res)
}

// WriteJSON sends payload as JSON.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

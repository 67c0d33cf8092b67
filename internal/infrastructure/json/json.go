package json

import (
	"encoding/json"
	"net/http"
)

const maxRequestBody = 1 << 20 // 1MB

// Read decodes a JSON request body into v, rejecting unknown fields and
// oversized bodies.
func Read(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBody)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}

// Write encodes data as a JSON response with the given status.
func Write(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

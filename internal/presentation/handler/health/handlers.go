package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/roomkit/roomkit/internal/infrastructure/json"
)

type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	data := healthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	}
	json.Write(w, http.StatusOK, data)
}

func (h *Handler) GetPing(w http.ResponseWriter, r *http.Request) {
	json.Write(w, http.StatusOK, "Pong!")
}

// GetRoot serves a tiny status page with the server version and time.
func (h *Handler) GetRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<h1>Server Version: %s</h1>\n<p>Current Time (UTC): %s</p>\n",
		h.version, time.Now().UTC().Format(time.RFC3339))
}

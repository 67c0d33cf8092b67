package admin

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/domain"
	"github.com/roomkit/roomkit/internal/infrastructure/json"
	"github.com/roomkit/roomkit/internal/infrastructure/storage"
)

type Handler struct {
	roomRepository domain.RoomRepository
	uploads        *storage.Uploads
	logger         *zap.SugaredLogger
}

func NewHandler(roomRepository domain.RoomRepository, uploads *storage.Uploads, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		roomRepository: roomRepository,
		uploads:        uploads,
		logger:         logger,
	}
}

type resetResponse struct {
	Message string   `json:"message"`
	Deleted []string `json:"deleted,omitempty"`
}

// ResetHandler reseeds both stores to the demo fixture and empties the
// uploads directory.
func (h *Handler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	h.logger.Infow("full reset triggered", "remote", r.RemoteAddr)

	if err := h.roomRepository.Reset(r.Context()); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	deleted, failed, err := h.uploads.DeleteAll(r.Context())
	if err != nil || len(failed) > 0 {
		json.WriteError(w, http.StatusInternalServerError, err, "Failed to delete some or all files")
		return
	}

	msg := "All files deleted successfully"
	if len(deleted) == 0 {
		msg = "No files to delete"
	}

	json.Write(w, http.StatusOK, resetResponse{Message: msg, Deleted: deleted})
}

package files

import (
	"errors"
	"net/http"
	"time"

	"github.com/roomkit/roomkit/internal/domain"
	"github.com/roomkit/roomkit/internal/infrastructure/json"
	"github.com/roomkit/roomkit/internal/infrastructure/metrics"
	"github.com/roomkit/roomkit/internal/infrastructure/storage"
)

const maxUploadSize = 32 << 20 // 32MB

// Publisher mirrors the fan-out used by the messages handler; upload notices
// take the same live path as regular messages.
type Publisher interface {
	Publish(topic string, msg domain.Message)
}

type Handler struct {
	messageRepository domain.MessageRepository
	uploads           *storage.Uploads
	publisher         Publisher
}

func NewHandler(messageRepository domain.MessageRepository, uploads *storage.Uploads, publisher Publisher) *Handler {
	return &Handler{
		messageRepository: messageRepository,
		uploads:           uploads,
		publisher:         publisher,
	}
}

// UploadFileHandler stores a multipart file, appends a synthetic message to
// the owner's log, and publishes that message to live subscribers.
func (h *Handler) UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	userID := r.FormValue("userId")
	if userID == "" {
		json.WriteBadRequestError(w, "userId is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}
	defer file.Close()

	// Reject before touching the disk so a missing room leaves no orphan
	// file behind.
	if _, err := h.messageRepository.Log(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrLogNotFound):
			json.WriteNotFoundError(w, err, "Room not found for file upload")
		default:
			json.WriteInternalError(w, err)
		}
		return
	}

	stored, err := h.uploads.Save(r.Context(), header.Filename, file)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	fileMessage := domain.NewFileMessage(stored.Name, stored.OriginalName, stored.Path, time.Now().UnixMilli())

	if _, err := h.messageRepository.Append(r.Context(), userID, fileMessage); err != nil {
		switch {
		case errors.Is(err, domain.ErrLogNotFound):
			json.WriteNotFoundError(w, err, "Room not found for file upload")
		default:
			json.WriteInternalError(w, err)
		}
		return
	}

	metrics.MessagesPosted.WithLabelValues("file").Inc()
	json.Write(w, http.StatusCreated, uploadResponse{
		Message: "File uploaded successfully",
		File:    stored,
	})

	h.publisher.Publish(userID, fileMessage)
}

// DeleteAllFilesHandler empties the uploads directory. Per-file failures are
// reported, not fatal.
func (h *Handler) DeleteAllFilesHandler(w http.ResponseWriter, r *http.Request) {
	deleted, failed, err := h.uploads.DeleteAll(r.Context())
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err, "Error reading directory")
		return
	}

	metrics.FilesDeleted.Add(float64(len(deleted)))

	msg := "All files deleted successfully"
	switch {
	case len(deleted) == 0 && len(failed) == 0:
		msg = "No files to delete"
	case len(failed) > 0:
		msg = "Some files could not be deleted"
	}

	json.Write(w, http.StatusOK, deleteAllResponse{
		Message: msg,
		Deleted: deleted,
		Errors:  failed,
	})
}

// SpaceInfoHandler reports capacity of the volume holding the uploads
// directory.
func (h *Handler) SpaceInfoHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.uploads.SpaceReport(r.Context())
	if err != nil {
		json.WriteError(w, http.StatusInternalServerError, err, "Error getting disk space")
		return
	}

	total := storage.FormatBytes(report.Total)
	used := storage.FormatBytes(report.Used)
	free := storage.FormatBytes(report.Free)

	json.Write(w, http.StatusOK, spaceInfoResponse{
		Message:            "Disk space details",
		TotalSpace:         total,
		UsedSpace:          used,
		FreeSpace:          free,
		UsedPercentage:     report.UsedPercentage,
		FreePercentage:     report.FreePercentage,
		TotalSpaceReadable: total.String(),
		UsedSpaceReadable:  used.String(),
		FreeSpaceReadable:  free.String(),
		DiskPath:           report.Path,
		Unit:               total.Unit,
	})
}

package messages

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/roomkit/roomkit/internal/domain"
	"github.com/roomkit/roomkit/internal/infrastructure/json"
	"github.com/roomkit/roomkit/internal/infrastructure/metrics"
)

// Publisher pushes a message to every live subscriber of a topic. Appending
// to the log and publishing are separate steps; publishing never writes to
// the store.
type Publisher interface {
	Publish(topic string, msg domain.Message)
}

type Handler struct {
	messageRepository domain.MessageRepository
	publisher         Publisher
}

func NewHandler(messageRepository domain.MessageRepository, publisher Publisher) *Handler {
	return &Handler{
		messageRepository: messageRepository,
		publisher:         publisher,
	}
}

func (h *Handler) ListMessagesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		json.WriteValidationError(w, errors.New("user ID is missing"))
		return
	}

	log, err := h.messageRepository.Log(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLogNotFound):
			json.WriteNotFoundError(w, err, "Room not found for "+userID)
		default:
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, log)
}

func (h *Handler) CreateMessageHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		json.WriteValidationError(w, errors.New("user ID is missing"))
		return
	}

	var req createMessageRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}
	if req.Text == "" {
		json.WriteBadRequestError(w, "text is required")
		return
	}
	if req.Timestamp == 0 {
		req.Timestamp = time.Now().UnixMilli()
	}

	message := domain.Message{Text: req.Text, Timestamp: req.Timestamp}

	log, err := h.messageRepository.Append(r.Context(), userID, message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLogNotFound):
			json.WriteNotFoundError(w, err, "Room not found for "+userID)
		default:
			json.WriteInternalError(w, err)
		}
		return
	}

	metrics.MessagesPosted.WithLabelValues("text").Inc()
	json.Write(w, http.StatusCreated, log)

	h.publisher.Publish(userID, message)
}

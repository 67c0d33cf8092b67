package rooms

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roomkit/roomkit/internal/domain"
	"github.com/roomkit/roomkit/internal/infrastructure/json"
	"github.com/roomkit/roomkit/internal/infrastructure/metrics"
)

type Handler struct {
	roomRepository    domain.RoomRepository
	messageRepository domain.MessageRepository
}

func NewHandler(roomRepository domain.RoomRepository, messageRepository domain.MessageRepository) *Handler {
	return &Handler{
		roomRepository:    roomRepository,
		messageRepository: messageRepository,
	}
}

func (h *Handler) ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomRepository.List(r.Context())
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, rooms)
}

func (h *Handler) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}
	if req.UserID == "" {
		json.WriteBadRequestError(w, "userId is required")
		return
	}

	newRoom, err := domain.NewRoom(req.UserID, req.Duration)
	if err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := h.roomRepository.Create(r.Context(), newRoom); err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomAlreadyExists):
			json.WriteError(w, http.StatusConflict, err, "Room already exists")
		default:
			json.WriteInternalError(w, err)
		}
		return
	}

	metrics.RoomsCreated.Inc()
	json.Write(w, http.StatusCreated, newRoom)
}

// EnterRoomHandler re-claims the caller's existing room by userId.
func (h *Handler) EnterRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req enterRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}
	if req.UserID == "" {
		json.WriteBadRequestError(w, "userId is required")
		return
	}

	room, err := h.roomRepository.GetByUserID(r.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteNotFoundError(w, err, "Room not found")
		default:
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, room)
}

func (h *Handler) GetRoomByIDHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	if roomID == "" {
		json.WriteValidationError(w, errors.New("room ID is missing"))
		return
	}

	room, err := h.roomRepository.GetByID(r.Context(), roomID)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	h.writeRoomWithLog(w, r, room)
}

func (h *Handler) GetRoomByKeyHandler(w http.ResponseWriter, r *http.Request) {
	accessKey := chi.URLParam(r, "accessKey")
	if accessKey == "" {
		json.WriteValidationError(w, errors.New("access key is missing"))
		return
	}

	room, err := h.roomRepository.GetByAccessKey(r.Context(), accessKey)
	if err != nil {
		h.writeLookupError(w, err)
		return
	}

	h.writeRoomWithLog(w, r, room)
}

// RoomDetailsHandler returns the message log for a user's room.
func (h *Handler) RoomDetailsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		json.WriteValidationError(w, errors.New("user ID is missing"))
		return
	}

	log, err := h.messageRepository.Log(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLogNotFound):
			json.WriteNotFoundError(w, err, "Room not found")
		default:
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, log)
}

func (h *Handler) writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound):
		json.WriteNotFoundError(w, err, "Room not found")
	default:
		json.WriteInternalError(w, err)
	}
}

// writeRoomWithLog pairs a room with its log. A room can exist without a log
// (seed USER4); roomData is null in that case.
func (h *Handler) writeRoomWithLog(w http.ResponseWriter, r *http.Request, room *domain.Room) {
	log, err := h.messageRepository.Log(r.Context(), room.UserID)
	if err != nil && !errors.Is(err, domain.ErrLogNotFound) {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, roomLookupResponse{Room: room, RoomData: log})
}

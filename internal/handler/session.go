package handler

import (
	"net/http"

	"github.com/yogastudio/yoga-api/internal/model"
	"github.com/yogastudio/yoga-api/internal/service"
)

// SessionHandler handles HTTP requests for sessions and participation.
type SessionHandler struct {
	service *service.SessionService
	mapper  *service.SessionMapper
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService, mapper *service.SessionMapper) *SessionHandler {
	return &SessionHandler{service: svc, mapper: mapper}
}

// HandleList handles GET /api/session requests.
func (h *SessionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.FindAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ToSessionDTOs(sessions))
}

// HandleGet handles GET /api/session/{id} requests.
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadID(w)
		return
	}

	session, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ToSessionDTO(session))
}

// HandleCreate handles POST /api/session requests.
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	session, ok := h.decodeSession(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ToSessionDTO(created))
}

// HandleUpdate handles PUT /api/session/{id} requests.
func (h *SessionHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadID(w)
		return
	}

	session, ok := h.decodeSession(w, r)
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), id, session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ToSessionDTO(updated))
}

// HandleDelete handles DELETE /api/session/{id} requests.
func (h *SessionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadID(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleParticipate handles POST /api/session/{id}/participate/{userId} requests.
func (h *SessionHandler) HandleParticipate(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, ok := participationIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.Participate(r.Context(), sessionID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleNoLongerParticipate handles DELETE /api/session/{id}/participate/{userId} requests.
func (h *SessionHandler) HandleNoLongerParticipate(w http.ResponseWriter, r *http.Request) {
	sessionID, userID, ok := participationIDs(w, r)
	if !ok {
		return
	}

	if err := h.service.NoLongerParticipate(r.Context(), sessionID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SessionHandler) decodeSession(w http.ResponseWriter, r *http.Request) (*model.Session, bool) {
	var dto model.SessionDTO
	if !decodeJSON(w, r, &dto) {
		return nil, false
	}

	if err := dto.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return nil, false
	}

	session, err := h.mapper.ToEntity(r.Context(), dto)
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return session, true
}

func participationIDs(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		writeBadID(w)
		return 0, 0, false
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadID(w)
		return 0, 0, false
	}
	return sessionID, userID, true
}

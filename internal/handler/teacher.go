package handler

import (
	"net/http"

	"github.com/yogastudio/yoga-api/internal/service"
)

// TeacherHandler serves the read-only teacher directory.
type TeacherHandler struct {
	service *service.TeacherService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(svc *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: svc}
}

// HandleList handles GET /api/teacher requests.
func (h *TeacherHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.FindAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ToTeacherResponses(teachers))
}

// HandleGet handles GET /api/teacher/{id} requests.
func (h *TeacherHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadID(w)
		return
	}

	teacher, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ToTeacherResponse(teacher))
}

package handler

import (
	"net/http"

	"github.com/yogastudio/yoga-api/internal/middleware"
	"github.com/yogastudio/yoga-api/internal/service"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// HandleGet handles GET /api/user/{id} requests.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadID(w)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, service.ToUserResponse(user))
}

// HandleDelete handles DELETE /api/user/{id} requests. Only the account owner
// may delete an account.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteUnauthorized(w, r, "Full authentication is required to access this resource")
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeBadID(w)
		return
	}

	if err := h.service.Delete(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Create(ctx context.Context, input user.CreateInput) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]domain.User, error)
	Update(ctx context.Context, id int64, input user.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) (*domain.User, error)
	Deactivate(ctx context.Context, id int64) (*domain.User, error)
}

// UserHandler serves user management endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "users")}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Create(r.Context(), user.CreateInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// List handles GET /users?skip&limit.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	users, err := h.svc.List(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	norm := page.Normalize()
	writeJSON(w, http.StatusOK, userListResponse{
		Users: mapSlice(users, func(u domain.User) userResponse { return toUserResponse(&u) }),
		Total: len(users),
		Skip:  norm.Offset,
		Limit: norm.Limit,
	})
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, h.svc.Get)
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Update(r.Context(), id, user.UpdateInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("User %d deleted successfully", id)})
}

// Activate handles PATCH /users/{id}/activate.
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, h.svc.Activate)
}

// Deactivate handles PATCH /users/{id}/deactivate.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, h.svc.Deactivate)
}

func (h *UserHandler) withUser(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (*domain.User, error)) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	u, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	CreateApplicationComponent(ctx context.Context, input catalog.CreateNamedInput) (*domain.ApplicationComponent, error)
	ListApplicationComponents(ctx context.Context) ([]domain.ApplicationComponent, error)
	CreateInterfaceType(ctx context.Context, input catalog.CreateNamedInput) (*domain.InterfaceType, error)
	ListInterfaceTypes(ctx context.Context) ([]domain.InterfaceType, error)
	CreateInterface(ctx context.Context, input catalog.CreateInterfaceInput) (*domain.Interface, error)
	ListInterfaces(ctx context.Context) ([]domain.Interface, error)
}

// CatalogHandler serves application components, interface types and interfaces.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type namedRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type interfaceRequest struct {
	Name                   string  `json:"name"`
	Description            *string `json:"description"`
	ApplicationComponentID int64   `json:"application_component_id"`
	InterfaceTypeID        int64   `json:"interface_type_id"`
}

// CreateComponent handles POST /wosa/application-components.
func (h *CatalogHandler) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.CreateApplicationComponent(r.Context(), catalog.CreateNamedInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toComponentResponse(*c))
}

// ListComponents handles GET /wosa/application-components.
func (h *CatalogHandler) ListComponents(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListApplicationComponents(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toComponentResponse))
}

// CreateInterfaceType handles POST /wosa/interface-types.
func (h *CatalogHandler) CreateInterfaceType(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.CreateInterfaceType(r.Context(), catalog.CreateNamedInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInterfaceTypeResponse(*t))
}

// ListInterfaceTypes handles GET /wosa/interface-types.
func (h *CatalogHandler) ListInterfaceTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListInterfaceTypes(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toInterfaceTypeResponse))
}

// CreateInterface handles POST /wosa/interfaces.
func (h *CatalogHandler) CreateInterface(w http.ResponseWriter, r *http.Request) {
	var req interfaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	iface, err := h.svc.CreateInterface(r.Context(), catalog.CreateInterfaceInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInterfaceResponse(*iface))
}

// ListInterfaces handles GET /wosa/interfaces.
func (h *CatalogHandler) ListInterfaces(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListInterfaces(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toInterfaceResponse))
}

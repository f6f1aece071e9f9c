package rest

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/wosa-backend/internal/transport/middleware"
)

// APIPrefix is the mount point of every versioned endpoint.
const APIPrefix = "/api/v1"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Files   *FileHandler
	Catalog *CatalogHandler
	Topics  *TopicHandler
	Reports *ReportHandler
	Users   *UserHandler
	Auth    *AuthHandler

	// UploadGuard wraps the document intake endpoints (rate limiting).
	// Nil means no extra middleware.
	UploadGuard middleware.Middleware
	// Loaders wraps the topic listing with per-request dataloaders.
	Loaders middleware.Middleware
}

// NewRouter registers every route on a ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	guard := orPassthrough(h.UploadGuard)
	loaders := orPassthrough(h.Loaders)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		method, path, _ := strings.Cut(pattern, " ")
		mux.Handle(method+" "+APIPrefix+path, middleware.Chain(mws...)(fn))
	}

	// WOSA documents
	api("POST /wosa/upload", h.Files.Upload, guard)
	api("POST /wosa/process/{file_id}", h.Files.Process, guard)
	api("GET /wosa/files", h.Files.List)
	api("GET /wosa/files/{id}", h.Files.Get)

	// Catalog
	api("POST /wosa/application-components", h.Catalog.CreateComponent)
	api("GET /wosa/application-components", h.Catalog.ListComponents)
	api("POST /wosa/interface-types", h.Catalog.CreateInterfaceType)
	api("GET /wosa/interface-types", h.Catalog.ListInterfaceTypes)
	api("POST /wosa/interfaces", h.Catalog.CreateInterface)
	api("GET /wosa/interfaces", h.Catalog.ListInterfaces)

	// Topics
	api("GET /wosa/topics", h.Topics.List, loaders)
	api("GET /wosa/topics/{id}", h.Topics.Get)
	api("GET /wosa/topics/{id}/history", h.Topics.History)
	api("PUT /wosa/topics/{id}/interface", h.Topics.LinkInterface)
	api("POST /wosa/topics/{id}/deprecate", h.Topics.Deprecate)

	// Reports
	api("POST /wosa/reports", h.Reports.Generate)
	api("GET /wosa/reports", h.Reports.List)
	api("GET /wosa/reports/{id}", h.Reports.Get)
	api("GET /wosa/reports/{id}/items", h.Reports.Items)
	api("POST /wosa/generate-id", h.Reports.GenerateID)
	api("GET /wosa/health", h.Health.Service)

	// Users
	api("POST /users", h.Users.Create)
	api("GET /users", h.Users.List)
	api("GET /users/{id}", h.Users.Get)
	api("PUT /users/{id}", h.Users.Update)
	api("DELETE /users/{id}", h.Users.Delete)
	api("PATCH /users/{id}/activate", h.Users.Activate)
	api("PATCH /users/{id}/deactivate", h.Users.Deactivate)

	// Auth stub
	api("POST /auth/login", h.Auth.Login)
	api("POST /auth/logout", h.Auth.Logout)
	api("GET /auth/me", h.Auth.Me)

	return mux
}

func orPassthrough(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}

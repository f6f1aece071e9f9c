package rest

import (
	"net/http"
	"strings"
)

// AuthHandler serves the placeholder auth endpoints. No credential is
// checked; login always hands out the same token.
type AuthHandler struct{}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

const stubAccessToken = "fake-token"

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Login successful",
		Data: map[string]string{
			"access_token": stubAccessToken,
			"token_type":   "bearer",
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logout successful"})
}

// Me handles GET /auth/me and echoes the bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := extractBearer(r)
	if token == "" {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Current user info",
		"token":   token,
	})
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

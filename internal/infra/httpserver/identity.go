package httpserver

import (
	"net/http"
	"strings"
)

// The API sits behind a gateway that authenticates callers and forwards who
// they are in these headers.
const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"

	RoleOperator = "operator"
)

// UserID returns the authenticated owner id, or "" for anonymous requests.
func UserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(UserIDHeader))
}

func IsOperator(r *http.Request) bool {
	return strings.EqualFold(strings.TrimSpace(r.Header.Get(UserRoleHeader)), RoleOperator)
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next func(w http.ResponseWriter, r *http.Request, userID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := UserID(r)
		if userID == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next(w, r, userID)
	}
}

// RequireOperator rejects requests that do not carry the operator role with 403.
func RequireOperator(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !IsOperator(r) {
			http.Error(w, "operator role required", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/rebaby/models"
)

// contextKey is a private type for request-context keys owned by this package.
type contextKey string

// userIDCtxKey carries the signed-in user's id through the request context
// once requireLogin has verified the session.
const userIDCtxKey contextKey = "user_id"

// requireLogin redirects anonymous visitors to the login page with a notice
// and stores the verified user id in the request context for downstream
// handlers.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := h.currentUserID(r)
		if !ok {
			h.addNotice(w, r, models.NoticeInfo, "Connectez-vous pour accéder à cette page.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext retrieves the id stored by requireLogin.
func userIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(int64)
	return userID, ok
}

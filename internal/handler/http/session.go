package http

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/models"
)

const (
	sessionName    = "rebaby_session"
	sessionUserKey = "user_id"
)

func init() {
	// notices travel inside the signed session cookie
	gob.Register(models.Notice{})
}

// session returns the request's session, or a fresh one when the cookie is
// absent or fails signature verification.
func (h *Handler) session(r *http.Request) *sessions.Session {
	s, _ := h.sessions.Get(r, sessionName)
	return s
}

// currentUserID reports the signed-in user's id, if any.
func (h *Handler) currentUserID(r *http.Request) (int64, bool) {
	v, ok := h.session(r).Values[sessionUserKey]
	if !ok {
		return 0, false
	}

	userID, ok := v.(int64)
	return userID, ok && userID > 0
}

// establishSession signs the user in and queues a notice in one cookie write.
func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, userID int64, notice models.Notice) error {
	s := h.session(r)
	s.Values[sessionUserKey] = userID
	s.AddFlash(notice)
	return s.Save(r, w)
}

// clearSession signs the user out, keeping the session alive so the queued
// notice survives until the next rendered page.
func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request, notice models.Notice) error {
	s := h.session(r)
	delete(s.Values, sessionUserKey)
	s.AddFlash(notice)
	return s.Save(r, w)
}

// addNotice queues a one-shot notice for the next rendered page.
func (h *Handler) addNotice(w http.ResponseWriter, r *http.Request, category, message string) {
	s := h.session(r)
	s.AddFlash(models.Notice{Category: category, Message: message})

	if err := s.Save(r, w); err != nil {
		logger.FromRequest(r).Err(err).Msg("error saving session notice")
	}
}

// popNotices drains the queued notices and persists the emptied session.
func (h *Handler) popNotices(w http.ResponseWriter, r *http.Request) []models.Notice {
	s := h.session(r)

	flashes := s.Flashes()
	if len(flashes) == 0 {
		return nil
	}

	if err := s.Save(r, w); err != nil {
		logger.FromRequest(r).Err(err).Msg("error saving session after draining notices")
	}

	notices := make([]models.Notice, 0, len(flashes))
	for _, f := range flashes {
		if notice, ok := f.(models.Notice); ok {
			notices = append(notices, notice)
		}
	}

	return notices
}

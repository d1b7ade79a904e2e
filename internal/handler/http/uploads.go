package http

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// uploads serves a stored listing photo from the upload directory.
func (h *Handler) uploads(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	// only bare filenames are ever stored; anything else is a traversal attempt
	if filename == "" || filename != filepath.Base(filename) {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, h.services.UploadService.Path(filename))
}

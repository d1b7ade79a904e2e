package http

import "net/http"

// withBodyLimit caps every request body at the configured upload limit.
// A declared Content-Length over the cap is refused with 413 before any
// byte is read; bodies without a declared length are wrapped in
// http.MaxBytesReader so any read past the cap fails instead of filling
// an unbounded buffer.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > h.maxUploadBytes {
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		}
		next.ServeHTTP(w, r)
	})
}

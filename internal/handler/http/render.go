package http

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/MKhiriev/rebaby/internal/forms"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/models"
	"github.com/MKhiriev/rebaby/web"
)

// templatePages lists every renderable page. Each page is parsed together
// with the base layout into its own template set.
var templatePages = []string{
	"index.html",
	"register.html",
	"login.html",
	"add_item.html",
	"item_detail.html",
}

func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(templatePages))

	for _, page := range templatePages {
		t, err := template.ParseFS(web.Assets, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %q: %w", page, err)
		}
		templates[page] = t
	}

	return templates, nil
}

// TemplateData is the payload handed to every page template. LoggedIn,
// Notices and CSRFField are filled by render; handlers set the rest.
type TemplateData struct {
	LoggedIn  bool
	Notices   []models.Notice
	CSRFField template.HTML

	Form   any
	Errors forms.Errors
	Items  models.ItemPage
	Item   models.Item
}

// render executes the named page template into a buffer first, so the
// session cookie written while draining notices always precedes the
// response body, and a template failure can still produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, status int, data *TemplateData) {
	log := logger.FromRequest(r)

	t, ok := h.templates[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template requested")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &TemplateData{}
	}
	_, loggedIn := h.currentUserID(r)
	data.LoggedIn = loggedIn
	data.Notices = append(h.popNotices(w, r), data.Notices...)
	data.CSRFField = csrf.TemplateField(r)

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		log.Err(err).Str("page", page).Msg("error executing page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/rebaby/internal/forms"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/service"
	"github.com/MKhiriev/rebaby/internal/store"
	"github.com/MKhiriev/rebaby/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params := r.URL.Query()
	query := models.ListQuery{
		Query:       params.Get("q"),
		ListingType: params.Get("type"),
		Page:        parsePage(params.Get("page")),
	}

	page, err := h.services.ListingService.List(ctx, query)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred while listing items")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "index.html", http.StatusOK, &TemplateData{Items: page})
}

// parsePage interprets the ?page= parameter; anything that is not a
// positive integer falls back to the first page.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}

	return page
}

func (h *Handler) addItemForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "add_item.html", http.StatusOK, &TemplateData{Form: forms.ItemForm{}})
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := userIDFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	form := forms.ItemForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		ListingType: r.PostFormValue("listing_type"),
		Condition:   r.PostFormValue("condition"),
	}

	if errs := form.Validate(); errs.Has() {
		h.render(w, r, "add_item.html", http.StatusOK, &TemplateData{Form: form, Errors: errs})
		return
	}

	imageFilename, done := h.processUpload(w, r)
	if done {
		return
	}

	if _, err := h.services.ListingService.Create(ctx, ownerID, form, imageFilename); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid listing data provided")
			h.addNotice(w, r, models.NoticeDanger, "Prix invalide")
			http.Redirect(w, r, "/add", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during listing creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.addNotice(w, r, models.NoticeSuccess, "Annonce publiée ✅")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// processUpload stores the optional listing photo. It returns the stored
// filename (empty when no photo was attached) and whether the response has
// already been written, in which case the caller must stop.
func (h *Handler) processUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// an urlencoded submission has no file parts at all; like a multipart
	// one without an image field, it simply means no photo was attached
	file, header, err := r.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return "", false
	case err != nil:
		log.Err(err).Msg("error reading multipart image field")
		http.Error(w, "Requête invalide", http.StatusBadRequest)
		return "", true
	}
	defer file.Close()

	// browsers submit an empty part when the file input is left blank
	if header.Filename == "" {
		return "", false
	}

	imageFilename, err := h.services.UploadService.ProcessImage(ctx, file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedImageFormat):
			log.Err(err).Str("filename", header.Filename).Msg("unsupported image format")
			h.addNotice(w, r, models.NoticeDanger, "Format d'image non accepté")
		case errors.Is(err, service.ErrImageProcessingFailed):
			log.Err(err).Str("filename", header.Filename).Msg("image processing failed")
			h.addNotice(w, r, models.NoticeDanger, "Erreur lors du traitement de l'image")
		default:
			log.Err(err).Msg("unexpected error occurred during image upload")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return "", true
		}

		http.Redirect(w, r, "/add", http.StatusSeeOther)
		return "", true
	}

	return imageFilename, false
}

func (h *Handler) itemDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	item, err := h.services.ListingService.Get(ctx, itemID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			http.NotFound(w, r)
			return
		default:
			log.Err(err).Int64("id", itemID).Msg("unexpected error occurred during item lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.render(w, r, "item_detail.html", http.StatusOK, &TemplateData{Item: item})
}

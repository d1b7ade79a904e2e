package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rebaby/internal/forms"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/service"
	"github.com/MKhiriev/rebaby/internal/store"
	"github.com/MKhiriev/rebaby/models"
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register.html", http.StatusOK, &TemplateData{Form: forms.RegisterForm{}})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form := forms.RegisterForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if errs := form.Validate(); errs.Has() {
		h.render(w, r, "register.html", http.StatusOK, &TemplateData{Form: form, Errors: errs})
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", form.Email).Msg("email already registered")
			h.addNotice(w, r, models.NoticeWarning, "Email déjà utilisé, connectez-vous.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	notice := models.Notice{Category: models.NoticeSuccess, Message: "Bienvenue chez ReBaby 🎉"}
	if err := h.establishSession(w, r, registeredUser.UserID, notice); err != nil {
		log.Err(err).Msg("error establishing session after registration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", http.StatusOK, &TemplateData{Form: forms.LoginForm{}})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form := forms.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if errs := form.Validate(); errs.Has() {
		h.render(w, r, "login.html", http.StatusOK, &TemplateData{Form: form, Errors: errs})
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, form)
	if err != nil {
		switch {
		// an unknown email and a wrong password produce the same notice,
		// so the login page never confirms whether an account exists
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			h.render(w, r, "login.html", http.StatusOK, &TemplateData{
				Form:    form,
				Notices: []models.Notice{{Category: models.NoticeDanger, Message: "Email ou mot de passe incorrect"}},
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	notice := models.Notice{Category: models.NoticeSuccess, Message: "Connecté"}
	if err := h.establishSession(w, r, foundUser.UserID, notice); err != nil {
		log.Err(err).Msg("error establishing session after login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notice := models.Notice{Category: models.NoticeInfo, Message: "Déconnecté"}
	if err := h.clearSession(w, r, notice); err != nil {
		log.Err(err).Msg("error clearing session on logout")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

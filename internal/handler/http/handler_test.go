package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rebaby/internal/config"
	"github.com/MKhiriev/rebaby/internal/forms"
	"github.com/MKhiriev/rebaby/internal/logger"
	"github.com/MKhiriev/rebaby/internal/service"
	"github.com/MKhiriev/rebaby/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn func(ctx context.Context, form forms.RegisterForm) (models.User, error)
	loginFn    func(ctx context.Context, form forms.LoginForm) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, form forms.RegisterForm) (models.User, error) {
	return m.registerFn(ctx, form)
}

func (m *mockAuthService) Login(ctx context.Context, form forms.LoginForm) (models.User, error) {
	return m.loginFn(ctx, form)
}

// mockListingService implements service.ListingService for unit tests.
type mockListingService struct {
	listFn   func(ctx context.Context, query models.ListQuery) (models.ItemPage, error)
	createFn func(ctx context.Context, ownerID int64, form forms.ItemForm, imageFilename string) (models.Item, error)
	getFn    func(ctx context.Context, itemID int64) (models.Item, error)
}

func (m *mockListingService) List(ctx context.Context, query models.ListQuery) (models.ItemPage, error) {
	return m.listFn(ctx, query)
}

func (m *mockListingService) Create(ctx context.Context, ownerID int64, form forms.ItemForm, imageFilename string) (models.Item, error) {
	return m.createFn(ctx, ownerID, form, imageFilename)
}

func (m *mockListingService) Get(ctx context.Context, itemID int64) (models.Item, error) {
	return m.getFn(ctx, itemID)
}

// mockUploadService implements service.UploadService for unit tests.
type mockUploadService struct {
	processImageFn func(ctx context.Context, src io.Reader, originalName string) (string, error)
	pathFn         func(filename string) string
}

func (m *mockUploadService) Accept(string) error { return nil }

func (m *mockUploadService) Store(context.Context, io.Reader, string) (string, error) {
	return "", nil
}

func (m *mockUploadService) Normalize(context.Context, string) error { return nil }

func (m *mockUploadService) ProcessImage(ctx context.Context, src io.Reader, originalName string) (string, error) {
	return m.processImageFn(ctx, src, originalName)
}

func (m *mockUploadService) Path(filename string) string {
	if m.pathFn != nil {
		return m.pathFn(filename)
	}
	return filename
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given mocks, using the real
// embedded templates and an in-memory session store.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	cfg := &config.StructuredConfig{
		App:    config.App{SecretKey: "test-secret"},
		Server: config.Server{MaxUploadBytes: 5 << 20},
	}

	h, err := NewHandler(svcs, cfg, logger.Nop())
	require.NoError(t, err)

	return h
}

// formRequest builds a POST request carrying an urlencoded form body.
func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// signedInRequest attaches a valid session cookie for userID to req.
func signedInRequest(t *testing.T, h *Handler, req *http.Request, userID int64) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, h.establishSession(rec, seed, userID, models.Notice{}))

	res := rec.Result()
	defer res.Body.Close()
	cookies := res.Cookies()
	require.NotEmpty(t, cookies)

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

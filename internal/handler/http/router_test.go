package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistpro/asistencia-backend-go/internal/config"
	"github.com/asistpro/asistencia-backend-go/internal/pkg/jwt"
)

// stubHandlers satisfies every handler interface and answers 200, so the
// tests observe only what the middleware chain decides.
type stubHandlers struct{}

func stubOK(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func (stubHandlers) Login(w http.ResponseWriter, r *http.Request)         { stubOK(w, r) }
func (stubHandlers) Refresh(w http.ResponseWriter, r *http.Request)       { stubOK(w, r) }
func (stubHandlers) Logout(w http.ResponseWriter, r *http.Request)        { stubOK(w, r) }
func (stubHandlers) Create(w http.ResponseWriter, r *http.Request)        { stubOK(w, r) }
func (stubHandlers) GetByID(w http.ResponseWriter, r *http.Request)       { stubOK(w, r) }
func (stubHandlers) List(w http.ResponseWriter, r *http.Request)          { stubOK(w, r) }
func (stubHandlers) Update(w http.ResponseWriter, r *http.Request)        { stubOK(w, r) }
func (stubHandlers) Delete(w http.ResponseWriter, r *http.Request)        { stubOK(w, r) }
func (stubHandlers) Children(w http.ResponseWriter, r *http.Request)      { stubOK(w, r) }
func (stubHandlers) Subordinates(w http.ResponseWriter, r *http.Request)  { stubOK(w, r) }
func (stubHandlers) Register(w http.ResponseWriter, r *http.Request)      { stubOK(w, r) }
func (stubHandlers) Unlock(w http.ResponseWriter, r *http.Request)        { stubOK(w, r) }
func (stubHandlers) ForCompany(w http.ResponseWriter, r *http.Request)    { stubOK(w, r) }
func (stubHandlers) Mark(w http.ResponseWriter, r *http.Request)          { stubOK(w, r) }
func (stubHandlers) ActiveQRCodes(w http.ResponseWriter, r *http.Request) { stubOK(w, r) }
func (stubHandlers) MyRecords(w http.ResponseWriter, r *http.Request)     { stubOK(w, r) }
func (stubHandlers) DailySummary(w http.ResponseWriter, r *http.Request)  { stubOK(w, r) }
func (stubHandlers) Statistics(w http.ResponseWriter, r *http.Request)    { stubOK(w, r) }
func (stubHandlers) CreateManual(w http.ResponseWriter, r *http.Request)  { stubOK(w, r) }
func (stubHandlers) CreateQRCode(w http.ResponseWriter, r *http.Request)  { stubOK(w, r) }
func (stubHandlers) ListQRCodes(w http.ResponseWriter, r *http.Request)   { stubOK(w, r) }
func (stubHandlers) GetQRCode(w http.ResponseWriter, r *http.Request)     { stubOK(w, r) }
func (stubHandlers) UpdateQRCode(w http.ResponseWriter, r *http.Request)  { stubOK(w, r) }
func (stubHandlers) DeleteQRCode(w http.ResponseWriter, r *http.Request)  { stubOK(w, r) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Env:            "test",
			LogLevel:       "error",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
	jwtService := jwt.NewJWTService("router-test-secret", "1h", "168h")

	h := stubHandlers{}
	return NewRouter(cfg, jwtService, h, h, h, h, h, h, h, h), jwtService
}

func authorizedGet(t *testing.T, router http.Handler, jwtService jwt.Service, path string, isAdmin bool) *httptest.ResponseRecorder {
	t.Helper()

	token, _, err := jwtService.GenerateAccessToken("b2f1d1a0-0000-0000-0000-000000000001", "12345678", "12345678@empresa.com", nil, nil, isAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStatisticsOpenToAnyTokenHolder(t *testing.T) {
	router, jwtService := newTestRouter(t)

	rec := authorizedGet(t, router, jwtService, "/api/v1/attendance/estadisticas", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatisticsRejectsAnonymous(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/estadisticas", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	router, jwtService := newTestRouter(t)

	paths := []string{
		"/api/v1/companies",
		"/api/v1/attendance/records",
		"/api/v1/attendance/qr-codes",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := authorizedGet(t, router, jwtService, path, false)
			assert.Equal(t, http.StatusForbidden, rec.Code)

			rec = authorizedGet(t, router, jwtService, path, true)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

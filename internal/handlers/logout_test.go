package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/daily-diet/internal/middlewares"
	"github.com/sbilibin2017/daily-diet/internal/models"
	"github.com/sbilibin2017/daily-diet/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withIdentity simulates a request that passed the auth middleware.
func withIdentity(r *http.Request, identity *models.Identity) *http.Request {
	return r.WithContext(middlewares.SetIdentityToContext(r.Context(), identity))
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cookies := session.New(false, 0)
	identity := &models.Identity{ID: uuid.New(), Name: "alice", Email: "a@x.com"}

	t.Run("clears session and cookie", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), identity.ID).Return(nil)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/logout", nil), identity)
		rr := httptest.NewRecorder()
		NewLogoutHandler(mockSvc, cookies)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		c := sessionCookie(t, rr)
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	})

	t.Run("store error keeps cookie", func(t *testing.T) {
		mockSvc := NewMockLogouter(ctrl)
		mockSvc.EXPECT().Logout(gomock.Any(), identity.ID).Return(errors.New("db down"))

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/logout", nil), identity)
		rr := httptest.NewRecorder()
		NewLogoutHandler(mockSvc, cookies)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Nil(t, sessionCookie(t, rr))
	})

	t.Run("no identity", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewLogoutHandler(NewMockLogouter(ctrl), cookies)(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDashboardHandler(t *testing.T) {
	identity := &models.Identity{ID: uuid.New(), Name: "alice", Email: "a@x.com"}

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/dashboard", nil), identity)
	rr := httptest.NewRecorder()
	NewDashboardHandler()(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"user":{"id":"`+identity.ID.String()+`","name":"alice","email":"a@x.com"}}`,
		rr.Body.String())

	rr = httptest.NewRecorder()
	NewDashboardHandler()(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fazla-cloud/thunder-agency-platform/internal/dto"
	apierrors "github.com/fazla-cloud/thunder-agency-platform/internal/errors"
	"github.com/fazla-cloud/thunder-agency-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"email":     "NewClient@Example.com",
		"password":  "supersecret",
		"full_name": "New Client",
	}
	w := env.do(http.MethodPost, "/api/auth/signup", payload, nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "newclient@example.com", response.Profile.Email)
	assert.Equal(t, models.RoleClient, response.Profile.Role)
	require.NotNil(t, response.Profile.FullName)
	assert.Equal(t, "New Client", *response.Profile.FullName)
	assert.Equal(t, "/dashboard/client", response.RedirectTo)
	assert.NotNil(t, sessionCookie(w))
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		payload map[string]string
		status  int
		code    string
	}{
		{"missing fields", map[string]string{"email": "a@example.com"}, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{"short password", map[string]string{"email": "a@example.com", "password": "123", "full_name": "Ann"}, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{"short name", map[string]string{"email": "a@example.com", "password": "123456", "full_name": "A"}, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
		{"bad email", map[string]string{"email": "not-an-email", "password": "123456", "full_name": "Ann"}, http.StatusBadRequest, apierrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/auth/signup", tt.payload, nil)
			require.Equal(t, tt.status, w.Code)

			var apiErr apierrors.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}

	var users int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestAuthHandler_SignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "taken@example.com", models.RoleClient)

	w := env.do(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "taken@example.com", "password": "supersecret", "full_name": "Someone",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "designer@example.com", models.RoleDesigner)

	w := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "designer@example.com",
		"password": testPassword,
		"next":     "/dashboard/designer/tasks?status=completed",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.RoleDesigner, response.Profile.Role)
	assert.Equal(t, "/dashboard/designer/tasks?status=completed", response.RedirectTo)
}

func TestAuthHandler_LoginIgnoresForeignNext(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "client@example.com", models.RoleClient)

	for _, next := range []string{"/dashboard/admin", "https://evil.example.com/dashboard/client", "//evil.example.com"} {
		w := env.do(http.MethodPost, "/api/auth/login", map[string]string{
			"email": "client@example.com", "password": testPassword, "next": next,
		}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "/dashboard/client", response.RedirectTo, next)
	}
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "client@example.com", models.RoleClient)

	w := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "client@example.com", "password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, apierrors.ErrCodeInvalidCredentials, apiErr.Code)
	assert.Nil(t, sessionCookie(w))
}

func TestAuthHandler_LoginDisabledAccount(t *testing.T) {
	env := newTestEnv(t)
	profile := env.createUser(t, "gone@example.com", models.RoleMarketer)
	require.NoError(t, env.db.Model(&models.Profile{}).Where("id = ?", profile.ID).Update("is_active", false).Error)

	w := env.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": "gone@example.com", "password": testPassword,
	}, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, apierrors.ErrCodeAccountDisabled, apiErr.Code)
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "client@example.com", models.RoleClient)
	cookie := env.login(t, "client@example.com")

	w := env.do(http.MethodGet, "/api/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var me dto.ProfileDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "client@example.com", me.Email)

	w = env.do(http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := sessionCookie(w)
	require.NotNil(t, cleared)

	w = env.do(http.MethodGet, "/api/auth/me", nil, cleared)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_MeRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/login?redirected=true", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "login", body["form"])
	assert.Equal(t, true, body["redirected"])

	env.createUser(t, "admin@example.com", models.RoleAdmin)
	cookie := env.login(t, "admin@example.com")

	w = env.do(http.MethodGet, "/login", nil, cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/admin", w.Header().Get("Location"))
}

func TestAuthHandler_Root(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	env.createUser(t, "marketer@example.com", models.RoleMarketer)
	cookie := env.login(t, "marketer@example.com")

	w = env.do(http.MethodGet, "/", nil, cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard/marketer", w.Header().Get("Location"))
}

package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"github.com/anonto42/wanderlog/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sessionCookie(t *testing.T, w interface{ Result() *http.Response }, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	s := newServer(t)

	s.auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{
		FirstName: "Alice",
		Username:  "Alice",
		Password:  "wonderland",
		Country:   "Sweden",
	}).Return(&models.User{Username: "alice"}, nil)

	w := s.do(http.MethodPost, "/register", `{"firstName":"Alice","username":"Alice","password":"wonderland","country":"Sweden"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Registration successful! You can now log in.", decode(t, w)["message"])
	assert.NotContains(t, w.Body.String(), "wonderland")
}

func TestRegister_Errors(t *testing.T) {
	tt := []struct {
		name    string
		err     error
		message string
	}{
		{"username taken", services.ErrUsernameTaken, "Username already exists. Please try a different username."},
		{"unknown country", services.ErrCountryNotFound, "Country not found"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := newServer(t)
			s.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := s.do(http.MethodPost, "/register", `{"username":"alice","password":"pw","country":"Sweden"}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.message, decode(t, w)["message"])
		})
	}

	t.Run("missing required fields", func(t *testing.T) {
		s := newServer(t)

		w := s.do(http.MethodPost, "/register", `{"username":"   ","country":"Sweden"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		msg := decode(t, w)["message"].(string)
		assert.Contains(t, msg, "username is required")
		assert.Contains(t, msg, "password is required")
	})
}

func TestLoginAndSession(t *testing.T) {
	s := newServer(t)
	expires := time.Now().Add(time.Hour)

	s.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "alice", Password: "wonderland"}).
		Return(&models.Session{ID: "sid-42", IsLoggedIn: true, Username: "alice", ExpiresAt: expires}, nil)

	w := s.do(http.MethodPost, "/login", `{"username":"alice","password":"wonderland"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Login successful","username":"alice","isLoggedIn":true}`, w.Body.String())

	cookie := sessionCookie(t, w, "connect.sid")
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotContains(t, cookie.Value, "alice")

	sid, err := s.cookies.Decode(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "sid-42", sid)

	s.auth.EXPECT().Status(gomock.Any(), "sid-42").Return(models.SessionStatus{IsLoggedIn: true, Username: "alice"})
	w = s.do(http.MethodGet, "/session", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isLoggedIn":true,"username":"alice"}`, w.Body.String())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newServer(t)
	s.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidCredentials)

	w := s.do(http.MethodPost, "/login", `{"username":"alice","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["message"])
	assert.Nil(t, sessionCookie(t, w, "connect.sid"))

	s.auth.EXPECT().Status(gomock.Any(), "").Return(models.SessionStatus{})
	w = s.do(http.MethodGet, "/session", "")
	assert.JSONEq(t, `{"isLoggedIn":false}`, w.Body.String())
}

func TestFirebaseLogin(t *testing.T) {
	s := newServer(t)
	s.auth.EXPECT().LoginWithFirebase(gomock.Any(), "id-token").
		Return(&models.Session{ID: "sid-fb", IsLoggedIn: true, Username: "alice", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	w := s.do(http.MethodPost, "/firebase-login", `{"idToken":"id-token"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotNil(t, sessionCookie(t, w, "connect.sid"))

	w = s.do(http.MethodPost, "/firebase-login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	s := newServer(t)
	cookie, err := s.cookies.Encode("sid-42", time.Now().Add(time.Hour))
	require.NoError(t, err)

	s.auth.EXPECT().Logout(gomock.Any(), "sid-42").Return(nil)

	w := s.do(http.MethodGet, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logout successful","isLoggedIn":false}`, w.Body.String())

	cleared := sessionCookie(t, w, "connect.sid")
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)

	// no session at all is still a successful logout
	s.auth.EXPECT().Logout(gomock.Any(), "").Return(nil)
	w = s.do(http.MethodGet, "/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout_StoreError(t *testing.T) {
	s := newServer(t)
	s.auth.EXPECT().Logout(gomock.Any(), "").Return(errors.New("session store unavailable"))

	w := s.do(http.MethodGet, "/logout", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error during logout", decode(t, w)["message"])
}

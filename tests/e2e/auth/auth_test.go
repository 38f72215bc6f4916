//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"digital-menu/internal/domain/user"
	"digital-menu/internal/handler/dto/request"
	resdto "digital-menu/internal/handler/dto/response"
	"digital-menu/tests/common/authtest"
	"digital-menu/tests/common/dbtest"
	"digital-menu/tests/common/httptest"
	"digital-menu/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signUpURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleOwner))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleOwner))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestSignUp() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "new account", email: "new@example.com", password: "password123", expectedStatus: http.StatusCreated},
		{name: "email already registered", email: "owner@example.com", password: "password123", expectedStatus: http.StatusConflict},
		{name: "email registered with different case", email: "Owner@Example.com", password: "password123", expectedStatus: http.StatusConflict},
		{name: "short password", email: "short@example.com", password: "short", expectedStatus: http.StatusBadRequest},
		{name: "malformed email", email: "not-an-email", password: "password123", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, signUpURL,
				request.SignUpRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotNil(t, res.User)
				require.Equal(t, string(user.RoleOwner), res.User.Role)
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "owner@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "owner@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "owner@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name           string
		refreshToken   func() string
		expectedStatus int
	}{
		{
			name: "valid refresh token",
			refreshToken: func() string {
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "owner@example.com", Password: dbtest.TestPassword}, "")
				var res resdto.LoginResponse
				_ = httptest.DecodeResponseBody(s.T(), w.Body, &res)
				return res.RefreshToken
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid refresh token",
			refreshToken:   func() string { return "invalid-refresh-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing refresh token",
			refreshToken:   func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
				request.RefreshRequest{RefreshToken: tt.refreshToken()}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.NotEmpty(t, res.RefreshToken)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{
			name: "signed in user",
			token: func() string {
				return authtest.LoginUser(s.T(), s.Router, "owner@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusNoContent,
		},
		{name: "invalid token", token: func() string { return "invalid-token" }, expectedStatus: http.StatusUnauthorized},
		{name: "no token", token: func() string { return "" }, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, tt.token())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusNoContent {
				cookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, cookie)
				require.Empty(t, cookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setup          func() (email, role, token string)
		expectedStatus int
	}{
		{
			name: "owner",
			setup: func() (string, string, string) {
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "me-owner@example.com", string(user.RoleOwner))
				return "me-owner@example.com", string(user.RoleOwner), token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "admin",
			setup: func() (string, string, string) {
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "me-admin@example.com", string(user.RoleAdmin))
				return "me-admin@example.com", string(user.RoleAdmin), token
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid token",
			setup:          func() (string, string, string) { return "", "", "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no token",
			setup:          func() (string, string, string) { return "", "", "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setup()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, email)
				require.Contains(t, body, role)
				require.NotContains(t, body, "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired access token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleOwner))
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleOwner)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestSessionCookies() {
	s.Run("cookie session reaches protected routes", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		cookies := httptest.ExtractCookies(w)
		me := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, me.Code, me.Body.String())
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("two sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)
		token2 := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)
		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}

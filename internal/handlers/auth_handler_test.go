package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"retail_admin/internal/handlers"
	"retail_admin/internal/repository"
	"retail_admin/internal/schemas"
)

// fakeAuthRepository returns canned results; tests only exercise the HTTP
// mapping, the flows themselves are covered at the repository level.
type fakeAuthRepository struct {
	loginResult  *repository.AuthResult
	loginErr     error
	signupResult *repository.AuthResult
	signupErr    error
	refreshResult *repository.AuthResult
}

func (f *fakeAuthRepository) Login(schemas.Login) (*repository.AuthResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthRepository) Signup(schemas.Signup) (*repository.AuthResult, error) {
	return f.signupResult, f.signupErr
}

func (f *fakeAuthRepository) Refresh(string) (*repository.AuthResult, error) {
	return f.refreshResult, nil
}

func authEngine(repo repository.AuthRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewAuthHandler(repo, 900, false)
	e := gin.New()
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/signup", h.Signup)
	e.POST("/api/auth/refresh", h.Refresh)
	e.POST("/api/auth/logout", h.Logout)
	return e
}

func result(role string) *repository.AuthResult {
	return &repository.AuthResult{
		User: &schemas.UserResponse{
			ID:     uuid.New(),
			Name:   "Asha",
			Mobile: "9876543210",
			Role:   role,
		},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

func post(e *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestLoginInvalidBody(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{})
	w := post(e, "/api/auth/login", "{not json")
	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
}

func TestLoginBadCredentials(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{loginResult: nil})
	w := post(e, "/api/auth/login", `{"mobile":"9876543210","password":"wrong-1"}`)
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)

	var body map[string]string
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body["message"], qt.Equals, "Invalid credentials")
}

// Admin logins move the access token into an http-only cookie; the body
// carries the user only.
func TestLoginAdminSetsSessionCookie(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{loginResult: result("admin")})
	w := post(e, "/api/auth/login", `{"mobile":"9876543210","password":"secret1"}`)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	cookies := w.Result().Cookies()
	c.Assert(cookies, qt.HasLen, 1)
	c.Assert(cookies[0].Name, qt.Equals, handlers.SessionCookie)
	c.Assert(cookies[0].Value, qt.Equals, "access-token")
	c.Assert(cookies[0].HttpOnly, qt.IsTrue)
	c.Assert(cookies[0].SameSite, qt.Equals, http.SameSiteStrictMode)

	var body map[string]json.RawMessage
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	_, hasTokens := body["accessToken"]
	c.Assert(hasTokens, qt.IsFalse)
	_, hasUser := body["user"]
	c.Assert(hasUser, qt.IsTrue)
}

func TestLoginNonAdminGetsTokensInBody(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{loginResult: result("employee")})
	w := post(e, "/api/auth/login", `{"mobile":"9876543210","password":"secret1"}`)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Result().Cookies(), qt.HasLen, 0)

	var body map[string]json.RawMessage
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	_, hasAccess := body["accessToken"]
	c.Assert(hasAccess, qt.IsTrue)
	_, hasRefresh := body["refreshToken"]
	c.Assert(hasRefresh, qt.IsTrue)
}

func TestSignupCreated(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{signupResult: result("retailer")})
	w := post(e, "/api/auth/signup", `{"name":"Asha","mobile":"9876543210","password":"secret1","role":"retailer"}`)
	c.Assert(w.Code, qt.Equals, http.StatusCreated)
	c.Assert(strings.Contains(w.Body.String(), "password"), qt.IsFalse)
}

func TestSignupDuplicate(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{signupErr: repository.ErrUserExists})
	w := post(e, "/api/auth/signup", `{"name":"Asha","mobile":"9876543210","password":"secret1","role":"retailer"}`)
	c.Assert(w.Code, qt.Equals, http.StatusConflict)

	var body map[string]string
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body["message"], qt.Equals, "User already exists")
}

func TestRefreshInvalidToken(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{refreshResult: nil})
	w := post(e, "/api/auth/refresh", `{"token":"expired-or-garbage"}`)
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)

	var body map[string]string
	c.Assert(json.Unmarshal(w.Body.Bytes(), &body), qt.IsNil)
	c.Assert(body["message"], qt.Equals, "Invalid refresh token")
}

func TestRefreshMissingToken(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{})
	w := post(e, "/api/auth/refresh", `{}`)
	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)
}

func TestLogoutClearsCookie(t *testing.T) {
	c := qt.New(t)

	e := authEngine(&fakeAuthRepository{})
	w := post(e, "/api/auth/logout", ``)
	c.Assert(w.Code, qt.Equals, http.StatusOK)

	cookies := w.Result().Cookies()
	c.Assert(cookies, qt.HasLen, 1)
	c.Assert(cookies[0].Name, qt.Equals, handlers.SessionCookie)
	c.Assert(cookies[0].MaxAge < 0, qt.IsTrue)
}

package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/domain/mocks"
	"github.com/Guyuepp/food-reels/internal/rest"
)

func newAuthRouter(svc domain.AuthUsecase, p domain.Principal) *gin.Engine {
	h := rest.NewAuthHandler(svc, 24*time.Hour, false)
	r := gin.New()
	user := r.Group("/api/v1/auth/user")
	user.POST("/register", h.RegisterUser)
	user.POST("/login", h.LoginUser)
	user.POST("/logout", h.Logout)
	user.GET("/user/:id", h.GetUser)
	user.GET("/me", as(p), h.Me)
	partner := r.Group("/api/v1/auth/partner")
	partner.POST("/register", h.RegisterPartner)
	partner.POST("/login", h.LoginPartner)
	return r
}

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestRegisterUserSetsCookie(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	svc.On("RegisterUser", mock.Anything, "Ana", "ana@example.com", "secret123").
		Return(domain.User{ID: "u-1", Name: "Ana", Email: "ana@example.com"}, "tok", nil).Once()

	rec := do(newAuthRouter(svc, diner), http.MethodPost, "/api/v1/auth/user/register",
		`{"name":"Ana","email":"ana@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	c := tokenCookie(rec)
	require.NotNil(t, c)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterUserConflict(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	svc.On("RegisterUser", mock.Anything, "Ana", "ana@example.com", "secret123").
		Return(domain.User{}, "", domain.ErrConflict).Once()

	rec := do(newAuthRouter(svc, diner), http.MethodPost, "/api/v1/auth/user/register",
		`{"name":"Ana","email":"ana@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Nil(t, tokenCookie(rec))
}

func TestRegisterUserBadBody(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	rec := do(newAuthRouter(svc, diner), http.MethodPost, "/api/v1/auth/user/register", `{"name":"Ana","email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUserInvalidCredentials(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	svc.On("LoginUser", mock.Anything, "ana@example.com", "wrong").
		Return(domain.User{}, "", domain.ErrInvalidCredentials).Once()

	rec := do(newAuthRouter(svc, diner), http.MethodPost, "/api/v1/auth/user/login",
		`{"email":"ana@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"invalid email or password"}`, rec.Body.String())
}

func TestLogoutClearsCookie(t *testing.T) {
	rec := do(newAuthRouter(new(mocks.AuthUsecase), diner), http.MethodPost, "/api/v1/auth/user/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	c := tokenCookie(rec)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestGetUserIsPublicProfile(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	svc.On("GetUser", mock.Anything, "u-1").
		Return(domain.User{ID: "u-1", Name: "Ana", Email: "ana@example.com"}, nil).Once()

	rec := do(newAuthRouter(svc, diner), http.MethodGet, "/api/v1/auth/user/user/u-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
	assert.NotContains(t, rec.Body.String(), "ana@example.com")
}

func TestMe(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	svc.On("Me", mock.Anything, diner).Return(domain.User{ID: "u-1", Email: "ana@example.com"}, nil).Once()

	rec := do(newAuthRouter(svc, diner), http.MethodGet, "/api/v1/auth/user/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestRegisterPartner(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	svc.On("RegisterPartner", mock.Anything, mock.MatchedBy(func(p *domain.FoodPartner) bool {
		return p.Name == "Noodle Bar" && p.ContactName == "Kenji"
	})).Run(func(args mock.Arguments) {
		p := args.Get(1).(*domain.FoodPartner)
		p.ID = "p-1"
		p.Password = ""
	}).Return("tok", nil).Once()

	body := `{"name":"Noodle Bar","contact_name":"Kenji","phone":"555-0100","address":"1 Market St","email":"bar@example.com","password":"secret123"}`
	rec := do(newAuthRouter(svc, diner), http.MethodPost, "/api/v1/auth/partner/register", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"p-1"`)
	assert.False(t, strings.Contains(rec.Body.String(), "secret123"))
	require.NotNil(t, tokenCookie(rec))
}

func TestLoginPartner(t *testing.T) {
	svc := new(mocks.AuthUsecase)
	svc.On("LoginPartner", mock.Anything, "bar@example.com", "secret123").
		Return(domain.FoodPartner{ID: "p-1", Name: "Noodle Bar"}, "tok", nil).Once()

	rec := do(newAuthRouter(svc, diner), http.MethodPost, "/api/v1/auth/partner/login",
		`{"email":"bar@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", tokenCookie(rec).Value)
}

package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/food-reels/domain"
	"github.com/Guyuepp/food-reels/internal/rest/middleware"
	"github.com/Guyuepp/food-reels/internal/rest/request"
	"github.com/Guyuepp/food-reels/internal/rest/response"
)

// AuthHandler serves registration, login and profile routes of users and partners
type AuthHandler struct {
	Service      domain.AuthUsecase
	CookieMaxAge time.Duration
	CookieSecure bool
}

func NewAuthHandler(svc domain.AuthUsecase, cookieMaxAge time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		Service:      svc,
		CookieMaxAge: cookieMaxAge,
		CookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) setToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.CookieMaxAge.Seconds()), "/", "", h.CookieSecure, true)
}

func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req request.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	u, token, err := h.Service.RegisterUser(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.setToken(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user":    response.NewUserFromDomain(u),
		"token":   token,
	})
}

func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	u, token, err := h.Service.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.setToken(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "user logged in successfully",
		"user":    response.NewUserFromDomain(u),
		"token":   token,
	})
}

// Logout clears the session cookie of either kind
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	u, err := h.Service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	// public profile
	u.Email = ""
	c.JSON(http.StatusOK, gin.H{"user": response.NewUserFromDomain(u)})
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthenticated.Error()})
		return
	}

	u, err := h.Service.Me(c.Request.Context(), p)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": response.NewUserFromDomain(u)})
}

func (h *AuthHandler) RegisterPartner(c *gin.Context) {
	var req request.RegisterPartner
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	partner := req.ToDomain()
	token, err := h.Service.RegisterPartner(c.Request.Context(), &partner)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.setToken(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message":      "food partner registered successfully",
		"food_partner": response.NewPartnerFromDomain(partner),
		"token":        token,
	})
}

func (h *AuthHandler) LoginPartner(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	partner, token, err := h.Service.LoginPartner(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.setToken(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message":      "food partner logged in successfully",
		"food_partner": response.NewPartnerFromDomain(partner),
		"token":        token,
	})
}

package controllers

import (
	"net/http"

	"github.com/diogofgomespinheiro/daily-diet-api/middlewares"
	"github.com/diogofgomespinheiro/daily-diet-api/services"

	"github.com/gin-gonic/gin"
)

// Session cookies are valid for 7 days.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

type RegisterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Register creates a user for a fresh email, or re-issues the existing
// session when the email is already registered. Either way the response
// carries the session cookie.
func (h *UserController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, created, err := h.Svc.Register(c.Request.Context(), input.Name, input.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setSessionCookie(c, user.SessionToken)

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	c.Status(http.StatusCreated)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middlewares.SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aaru/pkg/util"
)

// AuthHandler implements the single-user login: the configured passphrase
// exchanged for a session token.
type AuthHandler struct {
	passwordHash string
	jwtSecret    string
}

func NewAuthHandler(passwordHash, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
	}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !util.CheckPassword(req.Password, h.passwordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := util.GenerateJWT("keeper", h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

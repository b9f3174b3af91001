package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) sessionPayload() gin.H {
	return gin.H{
		"loading":       h.Identity.Loading(),
		"authenticated": h.Identity.IsAuthenticated(),
		"user":          h.Identity.Session(),
	}
}

// GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionPayload())
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing registration fields"})
		return
	}
	if err := h.Identity.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		respondIdentityError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.sessionPayload())
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	if err := h.Identity.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		respondIdentityError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionPayload())
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Identity.Logout(c.Request.Context()); err != nil {
		respondIdentityError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sessionPayload())
}

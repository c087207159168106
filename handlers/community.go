package handlers

import (
	"net/http"

	"pawhaven/models"
	"pawhaven/services/community"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommunityHandler serves message-board endpoints.
type CommunityHandler struct {
	Service community.CommunityService
	Logger  *zap.Logger
}

// NewCommunityHandler creates a CommunityHandler.
func NewCommunityHandler(svc community.CommunityService, logger *zap.Logger) *CommunityHandler {
	return &CommunityHandler{Service: svc, Logger: logger}
}

// CreatePostHandler handles POST /api/community/posts.
func (h *CommunityHandler) CreatePostHandler(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.CreatePost(c.GetString("userID"), req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPostsHandler handles GET /api/community/posts.
func (h *CommunityHandler) ListPostsHandler(c *gin.Context) {
	posts, err := h.Service.ListPosts()
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostHandler handles GET /api/community/posts/:id.
func (h *CommunityHandler) GetPostHandler(c *gin.Context) {
	p, err := h.Service.GetPost(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// AddCommentHandler handles POST /api/community/posts/:id/comments.
func (h *CommunityHandler) AddCommentHandler(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	p, err := h.Service.AddComment(c.Param("id"), c.GetString("userID"), req.Body)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeletePostHandler handles DELETE /api/community/posts/:id.
func (h *CommunityHandler) DeletePostHandler(c *gin.Context) {
	isAdmin := c.GetString("role") == models.RoleAdmin
	if err := h.Service.DeletePost(c.Param("id"), c.GetString("userID"), isAdmin); err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

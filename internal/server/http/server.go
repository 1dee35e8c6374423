// Package httpserver exposes the taskbox HTTP/JSON API.
package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
	"github.com/taskbox/taskbox/internal/service"
	"github.com/taskbox/taskbox/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth  service.AuthService
	items service.ItemService
	codec *token.Codec
	log   *zap.Logger
}

// New constructs a Server with injected services.
func New(auth service.AuthService, items service.ItemService, codec *token.Codec, log *zap.Logger) *Server {
	return &Server{auth: auth, items: items, codec: codec, log: log}
}

// Router builds the gin engine with middleware and all routes. The login and
// health endpoints bypass the authentication gate; every /items route passes
// through it.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(Recover(s.log), RequestLogger(s.log), CORS())

	r.POST("/login", s.handleLogin)
	r.GET("/health", s.handleHealth)

	items := r.Group("/items", RequireAuth(s.codec))
	{
		items.GET("", s.handleListItems)
		items.POST("", s.handleCreateItem)
		items.PUT("/:id", s.handleUpdateItem)
		items.DELETE("/:id", s.handleDeleteItem)
	}

	return r
}

// --- Auth ---

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	// A malformed body leaves the fields empty and fails the same
	// missing-credentials check.
	_ = c.ShouldBindJSON(&req)

	tok, user, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password required"})
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			s.serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tok, "user": user})
}

// --- Items ---

func (s *Server) handleListItems(c *gin.Context) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}
	items, err := s.items.List(c.Request.Context(), claims.UserID)
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) handleCreateItem(c *gin.Context) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	_ = c.ShouldBindJSON(&req)

	item, err := s.items.Create(c.Request.Context(), claims.UserID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// A non-numeric id can never match an item.
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	var patch model.ItemPatch
	// A malformed body behaves as an empty patch: no fields provided,
	// nothing overwritten.
	_ = c.ShouldBindJSON(&patch)

	item, err := s.items.Update(c.Request.Context(), claims.UserID, id, patch)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	item, err := s.items.Delete(c.Request.Context(), claims.UserID, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully", "deletedItem": item})
}

// --- Health ---

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) serverError(c *gin.Context, err error) {
	s.log.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}

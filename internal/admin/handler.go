package admin

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"seripreview/internal/catalog"
	"seripreview/internal/notify"
	"seripreview/pkg/models"
)

type Handler struct {
	Repo         *catalog.Repo
	Hub          *notify.Hub
	Tokens       TokenService
	PasswordHash string
}

func NewHandler(repo *catalog.Repo, hub *notify.Hub, tokens TokenService, passwordHash string) *Handler {
	return &Handler{Repo: repo, Hub: hub, Tokens: tokens, PasswordHash: passwordHash}
}

func (h *Handler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.login)
}

// RegisterAdminRoutes expects rg to already carry AuthMiddleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/series/:title", h.upsertSeries)
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, exp, err := h.Tokens.Sign()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_at": exp,
	})
}

type upsertSeriesReq struct {
	Author  string `json:"author"`
	Summary string `json:"summary"`
	Cover   string `json:"cover"`
	Banner  string `json:"banner"`
}

func (h *Handler) upsertSeries(c *gin.Context) {
	title := strings.TrimSpace(c.Param("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return
	}

	var req upsertSeriesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	s := models.SeriesDB{
		ID:      uuid.NewString(),
		Title:   title,
		Author:  strings.TrimSpace(req.Author),
		Summary: strings.TrimSpace(req.Summary),
		Cover:   strings.TrimSpace(req.Cover),
		Banner:  strings.TrimSpace(req.Banner),
	}

	if err := h.Repo.Upsert(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upsert failed"})
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastJSON(notify.CatalogEvent{
			Type:   "catalog.update",
			Title:  title,
			Source: "admin",
			At:     time.Now().UTC(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"title": title, "status": "updated"})
}

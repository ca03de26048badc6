package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/handler"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func NewHandler(catalogService *Service, deploymentCounter deploymentCounter) Handler {
	return Handler{catalogService, deploymentCounter}
}

type Handler struct {
	catalogService    *Service
	deploymentCounter deploymentCounter
}

// List returns published listings. Public, no principal required.
func (h Handler) List(c *gin.Context) {
	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	params := ListParams{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "newest"),
		Limit:    limit,
	}

	servers, err := h.catalogService.List(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, servers)
}

// FindByID returns a single listing. Public.
func (h Handler) FindByID(c *gin.Context) {
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	server, err := h.catalogService.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, server)
}

type CreateServerRequest struct {
	Title            string                 `json:"title" binding:"required"`
	Description      string                 `json:"description" binding:"required"`
	ShortDescription string                 `json:"shortDescription"`
	Category         string                 `json:"category" binding:"required,serverCategory"`
	ImageURL         string                 `json:"imageUrl"`
	Specs            model.Specs            `json:"specs"`
	Features         []string               `json:"features"`
	Providers        []model.ServerProvider `json:"providers"`
	Pricing          map[string]float64     `json:"pricing"`
}

func (h Handler) Create(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request CreateServerRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	server, err := h.catalogService.Create(c.Request.Context(), u.ID, CreateServer{
		Title:            request.Title,
		Description:      request.Description,
		ShortDescription: request.ShortDescription,
		Category:         request.Category,
		ImageURL:         request.ImageURL,
		Specs:            request.Specs,
		Features:         request.Features,
		Providers:        request.Providers,
		Pricing:          request.Pricing,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, server)
}

type UpdateServerRequest struct {
	Title            *string                 `json:"title"`
	Description      *string                 `json:"description"`
	ShortDescription *string                 `json:"shortDescription"`
	Category         *string                 `json:"category" binding:"omitempty,serverCategory"`
	ImageURL         *string                 `json:"imageUrl"`
	Specs            *model.Specs            `json:"specs"`
	Features         *[]string               `json:"features"`
	Providers        *[]model.ServerProvider `json:"providers"`
	Pricing          *map[string]float64     `json:"pricing"`
}

func (h Handler) Update(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request UpdateServerRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	server, err := h.catalogService.Update(c.Request.Context(), id, u.ID, UpdateServer{
		Title:            request.Title,
		Description:      request.Description,
		ShortDescription: request.ShortDescription,
		Category:         request.Category,
		ImageURL:         request.ImageURL,
		Specs:            request.Specs,
		Features:         request.Features,
		Providers:        request.Providers,
		Pricing:          request.Pricing,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, server)
}

func (h Handler) Delete(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), id, u.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type SubmitRequest struct {
	ServerID uuid.UUID `json:"serverId" binding:"required"`
}

// Submit moves a draft listing into review.
func (h Handler) Submit(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request SubmitRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	server, err := h.catalogService.Submit(c.Request.Context(), request.ServerID, u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, server)
}

// Analytics summarizes the authenticated author's listings.
func (h Handler) Analytics(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	analytics, err := h.catalogService.AnalyticsForAuthor(c.Request.Context(), u.ID, h.deploymentCounter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

type ImportRequest struct {
	Owner string `json:"owner" binding:"required"`
	Repo  string `json:"repo" binding:"required"`
}

// Import runs the GitHub import pipeline for the authenticated author.
func (h Handler) Import(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request ImportRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	server, err := h.catalogService.Import(c.Request.Context(), u.ID, request.Owner, request.Repo)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Server imported successfully",
		"server":  server,
	})
}

type SyncRequest struct {
	ServerID uuid.UUID `json:"serverId" binding:"required"`
}

// Sync refreshes an imported listing from GitHub.
func (h Handler) Sync(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request SyncRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	server, err := h.catalogService.Sync(c.Request.Context(), request.ServerID, u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Server synced successfully with GitHub",
		"server":  server,
	})
}

package deployment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/handler"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func NewHandler(deploymentService *Service) Handler {
	return Handler{deploymentService}
}

type Handler struct {
	deploymentService *Service
}

// List returns the principal's deployments, optionally filtered by status.
func (h Handler) List(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	deployments, err := h.deploymentService.List(c.Request.Context(), u.ID, c.Query("status"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, deployments)
}

func (h Handler) FindByID(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	deployment, err := h.deploymentService.FindByID(c.Request.Context(), id, u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, deployment)
}

type CreateDeploymentRequest struct {
	ServerID      uuid.UUID         `json:"serverId" binding:"required"`
	Name          string            `json:"name" binding:"required"`
	Provider      string            `json:"provider" binding:"required"`
	Region        string            `json:"region" binding:"required"`
	Resources     model.Resources   `json:"resources"`
	Configuration map[string]string `json:"configuration"`
	Cost          float64           `json:"cost"`
}

// Create starts a deployment. The response returns immediately with the
// pending record; activation happens asynchronously.
func (h Handler) Create(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request CreateDeploymentRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	deployment, err := h.deploymentService.Create(c.Request.Context(), u.ID, CreateDeployment{
		ServerID:      request.ServerID,
		Name:          request.Name,
		Provider:      request.Provider,
		Region:        request.Region,
		Resources:     request.Resources,
		Configuration: request.Configuration,
		Cost:          request.Cost,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, deployment)
}

type UpdateDeploymentRequest struct {
	Name          *string            `json:"name"`
	Status        *string            `json:"status" binding:"omitempty,oneof=pending active failed"`
	Configuration *map[string]string `json:"configuration"`
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

	var request UpdateDeploymentRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	deployment, err := h.deploymentService.Update(c.Request.Context(), id, u.ID, UpdateDeployment{
		Name:          request.Name,
		Status:        request.Status,
		Configuration: request.Configuration,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, deployment)
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

	if err := h.deploymentService.Delete(c.Request.Context(), id, u.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

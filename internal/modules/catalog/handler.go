package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"framelight/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only marketing endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetServiceDetail)
}

// RegisterAdminRoutes mounts the catalog back-office.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/services", h.CreateService)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)
	rg.PUT("/services/:id/detail", h.UpsertDetail)
	rg.POST("/services/:id/gallery", h.AddGalleryImages)
	rg.DELETE("/services/:id/gallery", h.RemoveGalleryImages)
	rg.POST("/services/:id/packages", h.AddPackage)
	rg.PUT("/services/:id/packages/:packageId", h.UpdatePackage)
	rg.DELETE("/services/:id/packages/:packageId", h.DeletePackage)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) GetServiceDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	detail, err := h.service.GetServiceDetail(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "Failed to load service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"detail": detail})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err, "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err, "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "Failed to delete service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) UpsertDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpsertDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	detail, err := h.service.UpsertDetail(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err, "Failed to save service detail")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"detail": detail})
}

func (h *Handler) AddGalleryImages(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	detail, err := h.service.AddGalleryImages(c.Request.Context(), id, req.Images)
	if err != nil {
		h.renderError(c, err, "Failed to update gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"detail": detail})
}

func (h *Handler) RemoveGalleryImages(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	detail, err := h.service.RemoveGalleryImages(c.Request.Context(), id, req.Images)
	if err != nil {
		h.renderError(c, err, "Failed to update gallery")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"detail": detail})
}

func (h *Handler) AddPackage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pkg, err := h.service.AddPackage(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, err, "Failed to create package")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"package": pkg})
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pkg, err := h.service.UpdatePackage(c.Request.Context(), id, c.Param("packageId"), req)
	if err != nil {
		h.renderError(c, err, "Failed to update package")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"package": pkg})
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.service.DeletePackage(c.Request.Context(), id, c.Param("packageId")); err != nil {
		h.renderError(c, err, "Failed to delete package")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid catalog fields")
	case ErrSlugTaken:
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A service with this slug already exists")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog entry not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return 0, err
	}
	return id, nil
}

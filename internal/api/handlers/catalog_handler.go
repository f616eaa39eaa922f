package handlers

import (
	"net/http"
	"strings"

	"github.com/TiwariPiyush2510/Par-Stock/internal/service"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	planService *service.PlanService
}

func NewCatalogHandler(planService *service.PlanService) *CatalogHandler {
	return &CatalogHandler{planService: planService}
}

// Store saves an uploaded supplier catalog under the given id so later
// calculations can reference it by catalog_ids instead of re-uploading.
func (h *CatalogHandler) Store(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "catalog id is required"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload"})
		return
	}
	defer f.Close()

	label := strings.TrimSpace(c.PostForm("label"))
	entries, err := h.planService.StoreCatalog(c.Request.Context(), id, service.Upload{
		Name:   fh.Filename,
		Label:  label,
		Reader: f,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "entries": entries})
}

// List returns the ids of all stored catalogs.
func (h *CatalogHandler) List(c *gin.Context) {
	ids, err := h.planService.ListCatalogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list catalogs"})
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"catalogs": ids})
}

// Delete removes a stored catalog.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "catalog id is required"})
		return
	}

	if err := h.planService.DeleteCatalog(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

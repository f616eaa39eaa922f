package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/TiwariPiyush2510/Par-Stock/internal/domain"
	"github.com/TiwariPiyush2510/Par-Stock/internal/export"
	"github.com/TiwariPiyush2510/Par-Stock/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// Calculate handles the main par-stock computation request.
func (h *PlanHandler) Calculate(c *gin.Context) {
	result, ok := h.runCalculation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// CalculateExport runs the same computation and returns the plan as an xlsx
// attachment.
func (h *PlanHandler) CalculateExport(c *gin.Context) {
	result, ok := h.runCalculation(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("par-stock-plan-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteXLSX(c.Writer, result.Plans); err != nil {
		log.Error().Err(err).Msg("failed to write plan export")
	}
}

func (h *PlanHandler) runCalculation(c *gin.Context) (*service.PlanResult, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return nil, false
	}

	req, cleanup, err := buildPlanRequest(c, form)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	result, err := h.planService.Calculate(c.Request.Context(), *req)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return result, true
}

// buildPlanRequest maps the multipart form onto a PlanRequest. Upload slots:
// weekly_file and monthly_file (required), stock_file (optional),
// supplier_files (zero or more, labeled by filename stem) and catalog_ids
// (comma-separated references to stored catalogs).
func buildPlanRequest(c *gin.Context, form *multipart.Form) (*service.PlanRequest, func(), error) {
	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	open := func(fh *multipart.FileHeader) (multipart.File, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %q", fh.Filename)
		}
		opened = append(opened, f)
		return f, nil
	}

	single := func(field string) (*multipart.FileHeader, error) {
		files := form.File[field]
		if len(files) == 0 {
			return nil, fmt.Errorf("%s is required", field)
		}
		return files[0], nil
	}

	req := &service.PlanRequest{}

	weeklyFH, err := single("weekly_file")
	if err != nil {
		return nil, cleanup, err
	}
	weekly, err := open(weeklyFH)
	if err != nil {
		return nil, cleanup, err
	}
	req.Weekly = service.Upload{Name: weeklyFH.Filename, Reader: weekly}

	monthlyFH, err := single("monthly_file")
	if err != nil {
		return nil, cleanup, err
	}
	monthly, err := open(monthlyFH)
	if err != nil {
		return nil, cleanup, err
	}
	req.Monthly = service.Upload{Name: monthlyFH.Filename, Reader: monthly}

	if files := form.File["stock_file"]; len(files) > 0 {
		f, err := open(files[0])
		if err != nil {
			return nil, cleanup, err
		}
		req.Stock = &service.Upload{Name: files[0].Filename, Reader: f}
	}

	for _, fh := range form.File["supplier_files"] {
		f, err := open(fh)
		if err != nil {
			return nil, cleanup, err
		}
		req.Suppliers = append(req.Suppliers, service.Upload{
			Name:   fh.Filename,
			Label:  supplierLabel(fh.Filename),
			Reader: f,
		})
	}

	if ids := strings.TrimSpace(c.PostForm("catalog_ids")); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.CatalogIDs = append(req.CatalogIDs, id)
			}
		}
	}

	return req, cleanup, nil
}

// supplierLabel derives the attribution label from the upload's provenance.
func supplierLabel(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func respondError(c *gin.Context, err error) {
	var malformed *domain.MalformedInputError
	if errors.As(err, &malformed) {
		c.JSON(http.StatusBadRequest, gin.H{"error": malformed.Error(), "input": malformed.Input})
		return
	}

	var ambiguous *domain.AmbiguousPeriodDataError
	if errors.As(err, &ambiguous) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ambiguous.Error(), "item": ambiguous.Identity})
		return
	}

	log.Error().Err(err).Msg("calculation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "calculation failed", "details": err.Error()})
}

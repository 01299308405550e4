package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/leadscope/lead-intel-api/internal/errors"
	"github.com/leadscope/lead-intel-api/internal/services"
)

// LeadsHandler handles lead listing, filtering, and export operations.
type LeadsHandler struct {
	leadService services.LeadService
}

// NewLeadsHandler creates a new leads handler
func NewLeadsHandler(leadService services.LeadService) *LeadsHandler {
	return &LeadsHandler{leadService: leadService}
}

// GetLeads returns all leads matching the query filters, sorted by score.
func (h *LeadsHandler) GetLeads(c *gin.Context) {
	filter := h.parseFilterFromQuery(c)
	leads := h.leadService.ListLeads(filter)

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"total": len(leads),
	})
}

// GetLead returns a single enriched lead by id.
func (h *LeadsHandler) GetLead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead id: " + c.Param("id")})
		return
	}

	lead, err := h.leadService.GetLead(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get lead: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// ExportLeads renders the selected leads as a CSV or JSON attachment.
func (h *LeadsHandler) ExportLeads(c *gin.Context) {
	var req services.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid export request: " + err.Error()})
		return
	}

	if format := c.Query("format"); format != "" {
		req.Format = format
	}

	data, format, err := h.leadService.Export(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to export leads: " + err.Error()})
		return
	}

	filename := services.ExportFilename(format, time.Now())
	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Data(http.StatusOK, format.ContentType(), data)
}

// GetFilterOptions returns the distinct values available for filtering.
func (h *LeadsHandler) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.leadService.FilterOptions())
}

// GetAnalytics returns the pool-wide analytics summary.
func (h *LeadsHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.leadService.Analytics())
}

// parseFilterFromQuery parses filter criteria from query parameters. Missing
// or malformed parameters are simply skipped; filtering never fails.
func (h *LeadsHandler) parseFilterFromQuery(c *gin.Context) services.LeadFilter {
	filter := services.LeadFilter{
		TechStack:   c.Query("tech_stack"),
		Location:    c.Query("location"),
		CompanySize: c.Query("company_size"),
		Role:        c.Query("role"),
		Industry:    c.Query("industry"),
	}

	if minScore := c.Query("min_score"); minScore != "" {
		if parsed, err := strconv.Atoi(minScore); err == nil {
			filter.MinScore = &parsed
		}
	}

	if highQuality := c.Query("high_quality_only"); highQuality != "" {
		if parsed, err := strconv.ParseBool(highQuality); err == nil {
			filter.HighQualityOnly = parsed
		}
	}

	return filter
}

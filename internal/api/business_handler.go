package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/leadscope/lead-intel-api/internal/errors"
	"github.com/leadscope/lead-intel-api/internal/services"
)

// BusinessHandler serves the business intelligence endpoints: priority
// leads, playbooks, insights, and aggregate reports.
type BusinessHandler struct {
	leadService services.LeadService
}

// NewBusinessHandler creates a new business intelligence handler
func NewBusinessHandler(leadService services.LeadService) *BusinessHandler {
	return &BusinessHandler{leadService: leadService}
}

// GetPriorityLeads returns leads with high business alignment.
func (h *BusinessHandler) GetPriorityLeads(c *gin.Context) {
	report := h.leadService.PriorityLeads()

	c.JSON(http.StatusOK, gin.H{
		"priority_leads":     report.PriorityLeads,
		"total":              report.Total,
		"avg_business_score": report.AvgBusinessScore,
	})
}

// GetSalesPlaybook returns the composed outreach playbook for one lead.
func (h *BusinessHandler) GetSalesPlaybook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead id: " + c.Param("id")})
		return
	}

	playbook, err := h.leadService.GetPlaybook(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build playbook: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lead_id":  id,
		"playbook": playbook,
	})
}

// GetSalesInsights returns the derived sales insights for one lead.
func (h *BusinessHandler) GetSalesInsights(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead id: " + c.Param("id")})
		return
	}

	insights, err := h.leadService.GetInsights(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lead_id":  id,
		"insights": insights,
	})
}

// GetQualityReport returns the quality distribution of the lead pool.
func (h *BusinessHandler) GetQualityReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.leadService.QualityReport())
}

// GetIndustryInsights returns per-industry lead metrics.
func (h *BusinessHandler) GetIndustryInsights(c *gin.Context) {
	c.JSON(http.StatusOK, h.leadService.IndustryInsights())
}

// GetWorkflowStages returns the sales workflow reference data.
func (h *BusinessHandler) GetWorkflowStages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stages": h.leadService.WorkflowStages(),
	})
}

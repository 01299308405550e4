package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leadscope/lead-intel-api/internal/services"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, svcs *services.Services) {
	leadsHandler := NewLeadsHandler(svcs.Leads)
	businessHandler := NewBusinessHandler(svcs.Leads)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "lead-intel-api",
			"timestamp": time.Now().UTC(),
		})
	})

	api := r.Group("/api")
	{
		api.GET("/leads", leadsHandler.GetLeads)
		api.GET("/leads/:id", leadsHandler.GetLead)
		api.POST("/export", leadsHandler.ExportLeads)
		api.GET("/analytics", leadsHandler.GetAnalytics)
		api.GET("/filters/options", leadsHandler.GetFilterOptions)

		business := api.Group("/business")
		{
			business.GET("/priority-leads", businessHandler.GetPriorityLeads)
			business.GET("/sales-playbook/:id", businessHandler.GetSalesPlaybook)
			business.GET("/sales-insights/:id", businessHandler.GetSalesInsights)
			business.GET("/quality-report", businessHandler.GetQualityReport)
			business.GET("/industry-insights", businessHandler.GetIndustryInsights)
			business.GET("/workflow-stages", businessHandler.GetWorkflowStages)
		}
	}
}

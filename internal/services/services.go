package services

import (
	"github.com/leadscope/lead-intel-api/internal/catalog"
	"github.com/leadscope/lead-intel-api/internal/intel"
	"github.com/leadscope/lead-intel-api/internal/logger"
	"github.com/leadscope/lead-intel-api/internal/models"
)

// Services contains all application services
type Services struct {
	Leads LeadService
}

// LeadFilter contains filtering criteria for the lead list.
type LeadFilter struct {
	TechStack       string `json:"tech_stack"`
	Location        string `json:"location"`
	CompanySize     string `json:"company_size"`
	Role            string `json:"role"`
	Industry        string `json:"industry"`
	MinScore        *int   `json:"min_score"`
	HighQualityOnly bool   `json:"high_quality_only"`
}

// LeadService defines the lead intelligence business logic.
type LeadService interface {
	// Lead listing and detail
	ListLeads(filter LeadFilter) []models.EnrichedLead
	GetLead(id int) (models.EnrichedLead, error)
	GetInsights(id int) (models.SalesInsights, error)
	GetPlaybook(id int) (models.SalesPlaybook, error)

	// Aggregate reports
	Analytics() AnalyticsReport
	FilterOptions() FilterOptions
	PriorityLeads() PriorityReport
	QualityReport() QualityReport
	IndustryInsights() IndustryReport
	WorkflowStages() []models.WorkflowStage

	// Export
	Export(req ExportRequest) ([]byte, ExportFormat, error)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(cat *catalog.Catalog, engine *intel.Engine, log logger.Logger) *Services {
	return &Services{
		Leads: newLeadService(cat, engine, log),
	}
}

package services

import (
	"math"
	"sort"
	"strings"

	"github.com/leadscope/lead-intel-api/internal/catalog"
	"github.com/leadscope/lead-intel-api/internal/intel"
	"github.com/leadscope/lead-intel-api/internal/logger"
	"github.com/leadscope/lead-intel-api/internal/models"
)

// leadService implements LeadService over the static catalog and the
// intelligence engine. Every call recomputes enrichment from scratch; there
// is no cached or mutable state between requests.
type leadService struct {
	catalog *catalog.Catalog
	engine  *intel.Engine
	log     logger.Logger
}

func newLeadService(cat *catalog.Catalog, engine *intel.Engine, log logger.Logger) *leadService {
	return &leadService{catalog: cat, engine: engine, log: log}
}

// ListLeads enriches the catalog, applies the filter, and returns the result
// sorted by composite score descending.
func (s *leadService) ListLeads(filter LeadFilter) []models.EnrichedLead {
	leads := s.enrichedLeads()
	leads = applyFilter(leads, filter)

	if filter.HighQualityOnly {
		leads = s.engine.FilterHighQuality(leads)
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].Score > leads[j].Score
	})
	return leads
}

// GetLead returns a single enriched lead, or a NOT_FOUND error.
func (s *leadService) GetLead(id int) (models.EnrichedLead, error) {
	lead, err := s.catalog.GetByID(id)
	if err != nil {
		return models.EnrichedLead{}, err
	}
	return s.engine.Enrich(lead), nil
}

// GetInsights returns the derived sales insights for a single lead.
func (s *leadService) GetInsights(id int) (models.SalesInsights, error) {
	lead, err := s.catalog.GetByID(id)
	if err != nil {
		return models.SalesInsights{}, err
	}
	return s.engine.GenerateInsights(lead), nil
}

// GetPlaybook returns the composed outreach playbook for a single lead.
func (s *leadService) GetPlaybook(id int) (models.SalesPlaybook, error) {
	lead, err := s.catalog.GetByID(id)
	if err != nil {
		return models.SalesPlaybook{}, err
	}
	return s.engine.BuildPlaybook(lead), nil
}

// WorkflowStages returns the sales process reference data.
func (s *leadService) WorkflowStages() []models.WorkflowStage {
	return s.engine.WorkflowStages()
}

func (s *leadService) enrichedLeads() []models.EnrichedLead {
	return s.engine.EnrichAll(s.catalog.Leads())
}

// applyFilter narrows leads by the query criteria. String matches are
// case-insensitive substring checks except company size, which is exact.
func applyFilter(leads []models.EnrichedLead, filter LeadFilter) []models.EnrichedLead {
	out := leads

	if filter.TechStack != "" {
		out = keep(out, func(l models.EnrichedLead) bool {
			for _, tech := range l.TechStack {
				if strings.EqualFold(tech, filter.TechStack) {
					return true
				}
			}
			return false
		})
	}

	if filter.Location != "" {
		out = keep(out, func(l models.EnrichedLead) bool {
			return containsFold(l.Location, filter.Location)
		})
	}

	if filter.CompanySize != "" {
		out = keep(out, func(l models.EnrichedLead) bool {
			return l.CompanySize == filter.CompanySize
		})
	}

	if filter.Role != "" {
		out = keep(out, func(l models.EnrichedLead) bool {
			return containsFold(l.Role, filter.Role)
		})
	}

	if filter.Industry != "" {
		out = keep(out, func(l models.EnrichedLead) bool {
			return containsFold(l.Industry, filter.Industry)
		})
	}

	if filter.MinScore != nil {
		out = keep(out, func(l models.EnrichedLead) bool {
			return l.Score >= *filter.MinScore
		})
	}

	return out
}

func keep(leads []models.EnrichedLead, pred func(models.EnrichedLead) bool) []models.EnrichedLead {
	out := make([]models.EnrichedLead, 0, len(leads))
	for _, lead := range leads {
		if pred(lead) {
			out = append(out, lead)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

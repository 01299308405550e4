package intel

import (
	"time"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// Engine derives business intelligence from raw lead records. Every method is
// a pure function of its inputs plus the static reference tables; the only
// ambient read is the clock, used by the readiness recency check.
type Engine struct {
	now           func() time.Time
	recencyWindow time.Duration
}

// NewEngine creates an engine with the default 30-day activity window.
func NewEngine() *Engine {
	return &Engine{
		now:           time.Now,
		recencyWindow: 30 * 24 * time.Hour,
	}
}

// NewEngineWithOptions creates an engine with a custom recency window and
// clock. A nil clock falls back to time.Now.
func NewEngineWithOptions(recencyDays int, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		now:           now,
		recencyWindow: time.Duration(recencyDays) * 24 * time.Hour,
	}
}

// Enrich returns a copy of the lead with all derived intelligence attached:
// business priority score, sales readiness, quality assessment, and the
// final composite score. The input record is never mutated.
func (e *Engine) Enrich(lead models.Lead) models.EnrichedLead {
	priority := e.BusinessPriorityScore(lead)
	return models.EnrichedLead{
		Lead:                  lead,
		BusinessPriorityScore: priority,
		SalesReadiness:        e.AssessReadiness(lead),
		QualityAssessment:     e.AssessQuality(lead),
		Score:                 e.CompositeScore(lead, priority),
	}
}

// EnrichAll enriches a batch of leads. Each lead's computation is independent.
func (e *Engine) EnrichAll(leads []models.Lead) []models.EnrichedLead {
	enriched := make([]models.EnrichedLead, 0, len(leads))
	for _, lead := range leads {
		enriched = append(enriched, e.Enrich(lead))
	}
	return enriched
}

package intel

import (
	"strings"
	"time"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// Recommended approaches per readiness stage.
const (
	approachHot  = "Immediate personalized outreach"
	approachWarm = "Nurture sequence with value content"
	approachCold = "Educational content and brand building"
)

// AssessReadiness classifies a lead's outreach readiness. Confidence is the
// unweighted mean of four factors in [0,1]: engagement, field completeness,
// contact validity, and activity recency. Stage thresholds are inclusive
// lower bounds: >= 0.8 hot, >= 0.6 warm, else cold.
func (e *Engine) AssessReadiness(lead models.Lead) models.SalesReadiness {
	factors := make([]float64, 0, 4)

	// Engagement level
	factors = append(factors, float64(lead.Engagement(0))/100.0)

	// Data completeness over email, role, company, industry
	complete := 0
	for _, field := range []string{lead.Email, lead.Role, lead.Company, lead.Industry} {
		if field != "" {
			complete++
		}
	}
	factors = append(factors, float64(complete)/4.0)

	// Contact validity
	if lead.EmailValid {
		factors = append(factors, 1.0)
	} else {
		factors = append(factors, 0.3)
	}

	// Recent activity
	if e.isRecentActivity(lead.LastActivity) {
		factors = append(factors, 0.8)
	} else {
		factors = append(factors, 0.4)
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	confidence := sum / float64(len(factors))

	readiness := models.SalesReadiness{Confidence: confidence}
	switch {
	case confidence >= 0.8:
		readiness.Stage = models.StageHot
		readiness.RecommendedApproach = approachHot
		readiness.TimingPriority = "high"
	case confidence >= 0.6:
		readiness.Stage = models.StageWarm
		readiness.RecommendedApproach = approachWarm
		readiness.TimingPriority = "medium"
	default:
		readiness.Stage = models.StageCold
		readiness.RecommendedApproach = approachCold
		readiness.TimingPriority = "low"
	}
	return readiness
}

// isRecentActivity reports whether the last-activity timestamp falls within
// the recency window. Absent or unparsable values count as not recent.
func (e *Engine) isRecentActivity(lastActivity string) bool {
	if lastActivity == "" {
		return false
	}
	activity, ok := parseActivityTime(lastActivity)
	if !ok {
		return false
	}
	return e.now().Sub(activity) <= e.recencyWindow
}

// parseActivityTime accepts the ISO-8601 shapes the catalog produces:
// full RFC 3339, a timestamp without zone, or a bare date.
func parseActivityTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

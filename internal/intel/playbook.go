package intel

import (
	"fmt"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// BuildPlaybook composes a personalized outreach plan for a lead from its
// readiness assessment and sales insights.
func (e *Engine) BuildPlaybook(lead models.Lead) models.SalesPlaybook {
	readiness := e.AssessReadiness(lead)
	insights := e.GenerateInsights(lead)

	return models.SalesPlaybook{
		LeadProfile: models.LeadProfile{
			Company:  lead.Company,
			Contact:  lead.ContactName,
			Role:     lead.Role,
			Industry: lead.Industry,
		},
		ReadinessAssessment: readiness,
		OutreachStrategy:    defineOutreachStrategy(lead, readiness, insights),
		TimelineProjections: projectTimeline(readiness.Stage),
		SuccessMetrics:      successMetricsForSize(lead.CompanySize),
	}
}

// WorkflowStages returns the sales workflow reference data.
func (e *Engine) WorkflowStages() []models.WorkflowStage {
	return workflowStages
}

// defineOutreachStrategy selects the first touch, channel mix, and follow-up
// cadence for the lead's readiness stage, then appends up to three
// personalization elements from the insights and tech stack.
func defineOutreachStrategy(lead models.Lead, readiness models.SalesReadiness, insights models.SalesInsights) models.OutreachStrategy {
	strategy := models.OutreachStrategy{}

	switch readiness.Stage {
	case models.StageHot:
		strategy.FirstTouch = "Personalized video message or phone call"
		strategy.ChannelMix = []string{"Phone", "Email", "LinkedIn"}
	case models.StageWarm:
		strategy.FirstTouch = "Value-based email with industry insights"
		strategy.ChannelMix = []string{"Email", "LinkedIn", "Content marketing"}
	default:
		strategy.FirstTouch = "Educational content with soft CTA"
		strategy.ChannelMix = []string{"Content marketing", "Email", "Social media"}
	}

	if readiness.Stage == models.StageHot || readiness.Stage == models.StageWarm {
		strategy.FollowUpSequence = []string{
			"Day 2: Share relevant case study",
			"Day 5: Industry insight or article",
			"Day 10: Invitation to webinar or event",
			"Day 15: Final value proposition",
		}
	} else {
		strategy.FollowUpSequence = []string{
			"Week 1: Industry trends report",
			"Week 3: Customer success story",
			"Week 6: Product update or feature highlight",
			"Week 9: Re-engagement offer",
		}
	}

	personalization := []string{}
	if len(insights.KeyTalkingPoints) > 0 {
		personalization = append(personalization, fmt.Sprintf("Focus on %s", insights.KeyTalkingPoints[0]))
	}
	if len(insights.PotentialPainPoints) > 0 {
		personalization = append(personalization, fmt.Sprintf("Address %s", insights.PotentialPainPoints[0]))
	}
	if len(lead.TechStack) > 0 {
		personalization = append(personalization, fmt.Sprintf("Reference %s experience", lead.TechStack[0]))
	}
	strategy.PersonalizationElements = personalization

	return strategy
}

// projectTimeline maps each workflow stage to a duration range adjusted for
// the readiness stage. The adjustment is a flat one unit on each bound (the
// lower bound floored at 1) regardless of the range's magnitude — hot leads
// lose a unit per stage, cold leads gain one, warm leads use the base.
func projectTimeline(stage models.ReadinessStage) map[string]string {
	timeline := make(map[string]string, len(baseTimeline))
	for _, sr := range baseTimeline {
		low, high := sr.Low, sr.High
		switch stage {
		case models.StageHot:
			if low > 1 {
				low--
			}
			high--
		case models.StageCold:
			low++
			high++
		}
		timeline[sr.Stage] = fmt.Sprintf("%d-%d %s", low, high, sr.Unit)
	}
	return timeline
}

// successMetricsForSize selects deal targets by company-size tier, defaulting
// to the small-company targets for unknown or unset sizes.
func successMetricsForSize(companySize string) models.SuccessMetrics {
	switch {
	case idealCompanySizes[companySize]:
		return metricsLarge
	case midCompanySizes[companySize]:
		return metricsMid
	default:
		return metricsSmall
	}
}

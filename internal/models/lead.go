package models

// Lead is a raw prospect record as received from the data catalog. Fields may
// be missing; the intelligence engine degrades scores rather than erroring.
type Lead struct {
	ID           int      `json:"id"`
	Company      string   `json:"company"`
	ContactName  string   `json:"contact_name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	CompanySize  string   `json:"company_size"`
	Location     string   `json:"location"`
	TechStack    []string `json:"tech_stack"`
	Industry     string   `json:"industry"`
	FundingStage string   `json:"funding_stage"`
	// EngagementScore is a pointer because an absent score and a zero score
	// carry different defaults in the composite scorer.
	EngagementScore *int   `json:"engagement_score,omitempty"`
	EmailValid      bool   `json:"email_valid"`
	LinkedInURL     string `json:"linkedin_url"`
	LastActivity    string `json:"last_activity"`
}

// Engagement returns the engagement score, or def when the field is absent.
func (l Lead) Engagement(def int) int {
	if l.EngagementScore == nil {
		return def
	}
	return *l.EngagementScore
}

// ReadinessStage buckets a lead by sales-outreach timing.
type ReadinessStage string

const (
	StageCold ReadinessStage = "cold"
	StageWarm ReadinessStage = "warm"
	StageHot  ReadinessStage = "hot"
)

// QualityRecommendation is the verdict on whether to invest further effort.
type QualityRecommendation string

const (
	RecommendPursue  QualityRecommendation = "pursue"
	RecommendNurture QualityRecommendation = "nurture"
	RecommendDiscard QualityRecommendation = "discard"
)

// SalesReadiness describes how ready a lead is for outreach.
type SalesReadiness struct {
	Stage               ReadinessStage `json:"stage"`
	Confidence          float64        `json:"confidence"`
	RecommendedApproach string         `json:"recommended_approach"`
	TimingPriority      string         `json:"timing_priority"`
}

// QualityAssessment holds the four sub-scores and the combined verdict.
// All scores are in [0,1].
type QualityAssessment struct {
	OverallScore     float64               `json:"overall_score"`
	DataCompleteness float64               `json:"data_completeness"`
	ContactAccuracy  float64               `json:"contact_accuracy"`
	StrategicFit     float64               `json:"strategic_fit"`
	Actionability    float64               `json:"actionability"`
	Recommendation   QualityRecommendation `json:"recommendation"`
}

// EnrichedLead is a Lead with derived intelligence attached. Enrichment is
// additive: the embedded Lead is a copy, never the caller's record.
type EnrichedLead struct {
	Lead
	BusinessPriorityScore float64           `json:"business_priority_score"`
	SalesReadiness        SalesReadiness    `json:"sales_readiness"`
	QualityAssessment     QualityAssessment `json:"quality_assessment"`
	Score                 int               `json:"score"`
}

// SalesInsights are qualitative angles derived from a lead, returned as a
// separate value rather than merged into the record.
type SalesInsights struct {
	KeyTalkingPoints      []string `json:"key_talking_points"`
	PotentialPainPoints   []string `json:"potential_pain_points"`
	ValuePropositionFocus string   `json:"value_proposition_focus"`
	CompetitiveAngle      string   `json:"competitive_angle"`
}

// LeadProfile is the summary header of a playbook.
type LeadProfile struct {
	Company  string `json:"company"`
	Contact  string `json:"contact"`
	Role     string `json:"role"`
	Industry string `json:"industry"`
}

// OutreachStrategy is the stage-dependent contact plan for a lead.
type OutreachStrategy struct {
	FirstTouch              string   `json:"first_touch"`
	FollowUpSequence        []string `json:"follow_up_sequence"`
	ChannelMix              []string `json:"channel_mix"`
	PersonalizationElements []string `json:"personalization_elements"`
}

// SuccessMetrics are the targets for a deal with this lead's company tier.
type SuccessMetrics struct {
	DealSizeTarget        string   `json:"deal_size_target"`
	SalesCycleTarget      string   `json:"sales_cycle_target"`
	ConversionProbability string   `json:"conversion_probability"`
	KeyMetrics            []string `json:"key_metrics"`
}

// SalesPlaybook is a composed outreach plan for a single lead.
type SalesPlaybook struct {
	LeadProfile         LeadProfile       `json:"lead_profile"`
	ReadinessAssessment SalesReadiness    `json:"readiness_assessment"`
	OutreachStrategy    OutreachStrategy  `json:"outreach_strategy"`
	TimelineProjections map[string]string `json:"timeline_projections"`
	SuccessMetrics      SuccessMetrics    `json:"success_metrics"`
}

// WorkflowStage describes one stage of the sales workflow, used as reference
// data for timeline projections and process documentation.
type WorkflowStage struct {
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	Activities []string `json:"activities"`
}

package intel

import "github.com/leadscope/lead-intel-api/internal/models"

// Static reference tables for the intelligence engine. All tables are
// initialized once and never mutated, so they are safe to share across
// concurrent evaluations without synchronization.

// focusIndustries are the verticals the sales organization targets first.
var focusIndustries = map[string]bool{
	"SaaS":          true,
	"FinTech":       true,
	"HealthTech":    true,
	"AI/ML":         true,
	"Cybersecurity": true,
	"EdTech":        true,
	"CleanTech":     true,
}

// Growth-stage company size buckets. idealCompanySizes is the subset of
// targetCompanySizes that scores full marks.
var targetCompanySizes = map[string]bool{
	"51-200":   true,
	"101-200":  true,
	"201-500":  true,
	"501-1000": true,
}

var idealCompanySizes = map[string]bool{
	"201-500":  true,
	"501-1000": true,
}

// priorityRole is one entry in the ordered role scan. Order is an observable
// tie-break: the first keyword found in the role title wins.
type priorityRole struct {
	Keyword       string
	DecisionMaker bool
}

var priorityRoles = []priorityRole{
	{Keyword: "CTO", DecisionMaker: true},
	{Keyword: "CEO", DecisionMaker: true},
	{Keyword: "VP", DecisionMaker: false},
	{Keyword: "Head of", DecisionMaker: false},
	{Keyword: "Chief", DecisionMaker: true},
	{Keyword: "Director", DecisionMaker: false},
}

// idealTechStack is the fixed set of technologies considered favorable.
// Membership is exact: catalog technology names are canonical.
var idealTechStack = map[string]bool{
	"React":      true,
	"Node.js":    true,
	"Python":     true,
	"AWS":        true,
	"Azure":      true,
	"GCP":        true,
	"PostgreSQL": true,
	"MongoDB":    true,
}

// industryPainPoints maps an exact industry name to its known pain points.
// Unknown industries yield no pain points, not an error.
var industryPainPoints = map[string][]string{
	"SaaS":          {"Scalability challenges", "Customer acquisition costs", "Subscription metrics"},
	"FinTech":       {"Regulatory compliance", "Security requirements", "Payment processing"},
	"HealthTech":    {"HIPAA compliance", "Data security", "Patient experience"},
	"AI/ML":         {"Model training costs", "Data infrastructure", "Talent acquisition"},
	"Cybersecurity": {"Threat landscape", "Compliance requirements", "Incident response"},
	"EdTech":        {"User engagement", "Content delivery", "Platform scalability"},
	"CleanTech":     {"Sustainability goals", "Energy efficiency", "Regulatory incentives"},
}

// roleTalkingPoints pairs a role keyword with its talking points. First
// keyword found in the role title wins; at most one entry applies.
type roleTalkingPoints struct {
	Keyword string
	Points  []string
}

var roleTalkingPointsTable = []roleTalkingPoints{
	{Keyword: "CTO", Points: []string{"Technical scalability", "Team productivity", "Infrastructure costs"}},
	{Keyword: "CEO", Points: []string{"Revenue growth", "Market competition", "Operational efficiency"}},
	{Keyword: "VP", Points: []string{"Team performance", "Budget management", "Strategic execution"}},
	{Keyword: "Head of", Points: []string{"Department goals", "Resource allocation", "Cross-functional collaboration"}},
	{Keyword: "Director", Points: []string{"Project delivery", "Team development", "Process improvement"}},
}

// Technology categories for value-proposition selection, checked in fixed
// priority order: cloud beats frontend beats backend.
var (
	cloudPlatforms     = []string{"AWS", "Azure", "GCP"}
	frontendFrameworks = []string{"React", "Vue.js", "Angular"}
	backendLanguages   = []string{"Python", "Node.js", "Java"}
)

const (
	valuePropCloud    = "Cloud optimization and cost savings"
	valuePropFrontend = "Frontend performance and user experience"
	valuePropBackend  = "Backend scalability and development efficiency"
	valuePropDefault  = "Overall technical efficiency and productivity"
)

// Company-size tiers for competitive angle and success-metric selection.
var (
	smallCompanySizes = map[string]bool{"11-50": true, "51-200": true}
	midCompanySizes   = map[string]bool{"51-200": true, "101-200": true}
)

const (
	angleGrowth     = "Rapid growth and agility focus"
	angleEnterprise = "Enterprise scalability and reliability"
	angleLeadership = "Market leadership and innovation"
)

// stageRange is a workflow stage with a base duration range in whole units.
type stageRange struct {
	Stage string
	Low   int
	High  int
	Unit  string
}

// baseTimeline is the unadjusted sales timeline. Playbook projections apply a
// flat one-unit shift per readiness stage; see projectTimeline.
var baseTimeline = []stageRange{
	{Stage: "prospecting", Low: 1, High: 2, Unit: "weeks"},
	{Stage: "qualification", Low: 1, High: 2, Unit: "weeks"},
	{Stage: "demonstration", Low: 2, High: 3, Unit: "weeks"},
	{Stage: "proposal", Low: 2, High: 3, Unit: "weeks"},
	{Stage: "negotiation", Low: 2, High: 4, Unit: "weeks"},
}

// workflowStages is reference data describing the sales process itself.
var workflowStages = []models.WorkflowStage{
	{Name: "prospecting", Duration: "1-2 weeks", Activities: []string{"Initial outreach", "LinkedIn connection", "Email sequence"}},
	{Name: "qualification", Duration: "1 week", Activities: []string{"Discovery call", "Needs assessment", "BANT qualification"}},
	{Name: "demonstration", Duration: "2 weeks", Activities: []string{"Product demo", "Technical deep dive", "Use case validation"}},
	{Name: "proposal", Duration: "1-2 weeks", Activities: []string{"Solution design", "Proposal creation", "Stakeholder alignment"}},
	{Name: "negotiation", Duration: "1-3 weeks", Activities: []string{"Contract review", "Pricing negotiation", "Legal review"}},
}

// Success-metric targets per company-size tier.
var (
	metricsLarge = models.SuccessMetrics{
		DealSizeTarget:        "$50K - $150K ACV",
		SalesCycleTarget:      "60-90 days",
		ConversionProbability: "25-40%",
		KeyMetrics:            []string{"Executive sponsorship", "ROI calculation", "Competitive displacement"},
	}
	metricsMid = models.SuccessMetrics{
		DealSizeTarget:        "$25K - $75K ACV",
		SalesCycleTarget:      "45-75 days",
		ConversionProbability: "35-50%",
		KeyMetrics:            []string{"Department adoption", "User engagement", "Feature utilization"},
	}
	metricsSmall = models.SuccessMetrics{
		DealSizeTarget:        "$10K - $30K ACV",
		SalesCycleTarget:      "30-60 days",
		ConversionProbability: "45-60%",
		KeyMetrics:            []string{"Quick time-to-value", "Ease of implementation", "Immediate pain relief"},
	}
)

// roleBonus is one entry in the composite scorer's ordered role scan. This
// table is distinct from priorityRoles: it carries per-keyword points and a
// longer tail of roles.
type roleBonus struct {
	Keyword string
	Points  int
}

var compositeRoleBonuses = []roleBonus{
	{Keyword: "CTO", Points: 25},
	{Keyword: "CEO", Points: 25},
	{Keyword: "CIO", Points: 25},
	{Keyword: "VP", Points: 20},
	{Keyword: "Head of", Points: 20},
	{Keyword: "Chief", Points: 25},
	{Keyword: "Director", Points: 15},
	{Keyword: "Manager", Points: 10},
}

// Exact-match bonus tables for the composite scorer. Unknown keys score 0.
var compositeSizeBonuses = map[string]int{
	"501-1000": 15,
	"201-500":  12,
	"101-200":  10,
	"51-200":   8,
	"11-50":    5,
}

var compositeFundingBonuses = map[string]int{
	"Series C": 15,
	"Series B": 12,
	"Series A": 10,
	"Seed":     5,
}

package services

import (
	"sort"

	"github.com/leadscope/lead-intel-api/internal/models"
)

// NameCount is a named tally used in analytics breakdowns.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AnalyticsReport summarizes the lead pool.
type AnalyticsReport struct {
	TotalLeads        int         `json:"total_leads"`
	ValidEmails       int         `json:"valid_emails"`
	AvgScore          float64     `json:"avg_score"`
	HighQualityLeads  int         `json:"high_quality_leads"`
	HighPriorityLeads int         `json:"high_priority_leads"`
	SalesReadyLeads   int         `json:"sales_ready_leads"`
	QualityLeads      int         `json:"quality_leads"`
	TopTechnologies   []NameCount `json:"top_technologies"`
	Locations         []NameCount `json:"locations"`
	Industries        []NameCount `json:"industries"`
}

// FilterOptions lists the distinct values available for lead filtering.
type FilterOptions struct {
	TechStacks   []string `json:"tech_stacks"`
	Locations    []string `json:"locations"`
	CompanySizes []string `json:"company_sizes"`
	Roles        []string `json:"roles"`
	Industries   []string `json:"industries"`
}

// PriorityReport lists leads with high business alignment.
type PriorityReport struct {
	PriorityLeads    []models.EnrichedLead `json:"priority_leads"`
	Total            int                   `json:"total"`
	AvgBusinessScore float64               `json:"avg_business_score"`
}

// QualityReport summarizes the quality distribution of the lead pool.
type QualityReport struct {
	QualityDistribution  map[models.QualityRecommendation]int `json:"quality_distribution"`
	AvgQualityScore      float64                              `json:"avg_quality_score"`
	AvgBusinessScore     float64                              `json:"avg_business_score"`
	ActionableLeadsCount int                                  `json:"actionable_leads_count"`
	ActionablePercentage float64                              `json:"actionable_percentage"`
}

// IndustryMetrics aggregates lead quality per industry.
type IndustryMetrics struct {
	Count                 int     `json:"count"`
	AvgScore              float64 `json:"avg_score"`
	AvgBusinessPriority   float64 `json:"avg_business_priority"`
	HighQualityCount      int     `json:"high_quality_count"`
	HighQualityPercentage float64 `json:"high_quality_percentage"`
}

// IndustryRank pairs an industry with its metrics for ranked output.
type IndustryRank struct {
	Industry string          `json:"industry"`
	Metrics  IndustryMetrics `json:"metrics"`
}

// IndustryReport breaks the lead pool down by industry.
type IndustryReport struct {
	IndustryInsights map[string]IndustryMetrics `json:"industry_insights"`
	TopIndustries    []IndustryRank             `json:"top_industries"`
}

// Priority thresholds for aggregate reports.
const (
	highPriorityThreshold = 70
	highQualityScore      = 80
)

// Analytics computes the pool-wide summary.
func (s *leadService) Analytics() AnalyticsReport {
	leads := s.enrichedLeads()

	report := AnalyticsReport{TotalLeads: len(leads)}
	if len(leads) == 0 {
		report.TopTechnologies = []NameCount{}
		report.Locations = []NameCount{}
		report.Industries = []NameCount{}
		return report
	}

	techCounts := make(map[string]int)
	locationCounts := make(map[string]int)
	industryCounts := make(map[string]int)
	scoreSum := 0

	for _, lead := range leads {
		if lead.EmailValid {
			report.ValidEmails++
		}
		scoreSum += lead.Score
		if lead.Score >= highQualityScore {
			report.HighQualityLeads++
		}
		if lead.BusinessPriorityScore >= highPriorityThreshold {
			report.HighPriorityLeads++
		}
		if lead.SalesReadiness.Stage == models.StageHot {
			report.SalesReadyLeads++
		}
		if lead.QualityAssessment.Recommendation == models.RecommendPursue {
			report.QualityLeads++
		}

		for _, tech := range lead.TechStack {
			techCounts[tech]++
		}
		location := lead.Location
		if location == "" {
			location = "Unknown"
		}
		locationCounts[location]++
		industry := lead.Industry
		if industry == "" {
			industry = "Unknown"
		}
		industryCounts[industry]++
	}

	report.AvgScore = round1(float64(scoreSum) / float64(len(leads)))
	report.TopTechnologies = topCounts(techCounts, 5)
	report.Locations = sortedCounts(locationCounts)
	report.Industries = sortedCounts(industryCounts)
	return report
}

// FilterOptions collects the distinct filterable values from the catalog.
func (s *leadService) FilterOptions() FilterOptions {
	techs := make(map[string]bool)
	locations := make(map[string]bool)
	sizes := make(map[string]bool)
	roles := make(map[string]bool)
	industries := make(map[string]bool)

	for _, lead := range s.catalog.Leads() {
		for _, tech := range lead.TechStack {
			techs[tech] = true
		}
		locations[lead.Location] = true
		sizes[lead.CompanySize] = true
		roles[lead.Role] = true
		industries[lead.Industry] = true
	}

	return FilterOptions{
		TechStacks:   sortedKeys(techs),
		Locations:    sortedKeys(locations),
		CompanySizes: sortedKeys(sizes),
		Roles:        sortedKeys(roles),
		Industries:   sortedKeys(industries),
	}
}

// PriorityLeads returns leads with business priority >= 70, highest first.
func (s *leadService) PriorityLeads() PriorityReport {
	leads := s.enrichedLeads()

	priority := make([]models.EnrichedLead, 0, len(leads))
	sum := 0.0
	for _, lead := range leads {
		if lead.BusinessPriorityScore >= highPriorityThreshold {
			priority = append(priority, lead)
			sum += lead.BusinessPriorityScore
		}
	}

	sort.SliceStable(priority, func(i, j int) bool {
		return priority[i].BusinessPriorityScore > priority[j].BusinessPriorityScore
	})

	report := PriorityReport{PriorityLeads: priority, Total: len(priority)}
	if len(priority) > 0 {
		report.AvgBusinessScore = round1(sum / float64(len(priority)))
	}
	return report
}

// QualityReport computes the pursue/nurture/discard distribution.
func (s *leadService) QualityReport() QualityReport {
	leads := s.enrichedLeads()

	report := QualityReport{
		QualityDistribution: map[models.QualityRecommendation]int{
			models.RecommendPursue:  0,
			models.RecommendNurture: 0,
			models.RecommendDiscard: 0,
		},
	}
	if len(leads) == 0 {
		return report
	}

	qualitySum := 0.0
	businessSum := 0.0
	for _, lead := range leads {
		report.QualityDistribution[lead.QualityAssessment.Recommendation]++
		qualitySum += lead.QualityAssessment.OverallScore
		businessSum += lead.BusinessPriorityScore
	}

	report.AvgQualityScore = round2(qualitySum / float64(len(leads)))
	report.AvgBusinessScore = round1(businessSum / float64(len(leads)))
	report.ActionableLeadsCount = report.QualityDistribution[models.RecommendPursue]
	report.ActionablePercentage = round1(float64(report.ActionableLeadsCount) / float64(len(leads)) * 100)
	return report
}

// IndustryInsights aggregates scores per industry and ranks the top five by
// pursue count.
func (s *leadService) IndustryInsights() IndustryReport {
	leads := s.enrichedLeads()

	type accumulator struct {
		count       int
		scoreSum    int
		prioritySum float64
		pursueCount int
	}
	acc := make(map[string]*accumulator)

	for _, lead := range leads {
		industry := lead.Industry
		if industry == "" {
			industry = "Unknown"
		}
		a, ok := acc[industry]
		if !ok {
			a = &accumulator{}
			acc[industry] = a
		}
		a.count++
		a.scoreSum += lead.Score
		a.prioritySum += lead.BusinessPriorityScore
		if lead.QualityAssessment.Recommendation == models.RecommendPursue {
			a.pursueCount++
		}
	}

	insights := make(map[string]IndustryMetrics, len(acc))
	for industry, a := range acc {
		insights[industry] = IndustryMetrics{
			Count:                 a.count,
			AvgScore:              round1(float64(a.scoreSum) / float64(a.count)),
			AvgBusinessPriority:   round1(a.prioritySum / float64(a.count)),
			HighQualityCount:      a.pursueCount,
			HighQualityPercentage: round1(float64(a.pursueCount) / float64(a.count) * 100),
		}
	}

	ranked := make([]IndustryRank, 0, len(insights))
	for industry, metrics := range insights {
		ranked = append(ranked, IndustryRank{Industry: industry, Metrics: metrics})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Metrics.HighQualityCount != ranked[j].Metrics.HighQualityCount {
			return ranked[i].Metrics.HighQualityCount > ranked[j].Metrics.HighQualityCount
		}
		return ranked[i].Industry < ranked[j].Industry
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	return IndustryReport{IndustryInsights: insights, TopIndustries: ranked}
}

func topCounts(counts map[string]int, limit int) []NameCount {
	out := sortedByCount(counts)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortedByCount(counts map[string]int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedCounts(counts map[string]int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		if key != "" {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

package insight

import (
	"regexp"
	"strings"

	"daeda-site-be/pkg/consult/catalog"
)

// Insights holds the business signals found in a single message.
// Empty collections and empty strings mean "not mentioned".
type Insights struct {
	MentionedIndustries []string
	MentionedPainPoints []string
	MentionedGoals      []string
	CompanySize         string
	Urgency             string
}

const (
	CompanySizeSmall      = "small"
	CompanySizeMedium     = "medium"
	CompanySizeEnterprise = "enterprise"

	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
)

var (
	sizeSmallRe      = regexp.MustCompile(`\b(startup|small business|solo|freelance|1-10)\b`)
	sizeMediumRe     = regexp.MustCompile(`\b(medium|mid-size|growing|11-100|11-50)\b`)
	sizeEnterpriseRe = regexp.MustCompile(`\b(enterprise|large|corporation|500\+|1000\+)\b`)

	urgencyHighRe   = regexp.MustCompile(`\b(urgent|asap|immediately|this week|right away)\b`)
	urgencyMediumRe = regexp.MustCompile(`\b(this month|soon|quickly)\b`)
)

// goalKeywords are scanned in this order; each hit captures the surrounding
// sentence fragment (greedy, bounded by periods).
var goalKeywords = []string{
	"improve", "increase", "reduce", "save", "grow", "scale", "optimize", "automate", "streamline",
}

var goalPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(goalKeywords))
	for _, kw := range goalKeywords {
		patterns[kw] = regexp.MustCompile(`(?i)[^.]*` + regexp.QuoteMeta(kw) + `[^.]*\.?`)
	}
	return patterns
}()

// Extract scans one message for industry, pain-point, company-size, urgency
// and goal signals. Pure and deterministic; never fails. Match ordering
// follows vocabulary iteration order, not position in the text.
func Extract(message string) Insights {
	insights := Insights{
		MentionedIndustries: []string{},
		MentionedPainPoints: []string{},
		MentionedGoals:      []string{},
	}

	lower := strings.ToLower(message)

	for _, industry := range catalog.Industries {
		if strings.Contains(lower, industry) {
			insights.MentionedIndustries = append(insights.MentionedIndustries, industry)
		}
	}

	for _, solution := range catalog.PainPointSolutions {
		if strings.Contains(lower, strings.ToLower(solution.PainPoint)) {
			insights.MentionedPainPoints = append(insights.MentionedPainPoints, solution.PainPoint)
		}
	}

	switch {
	case sizeSmallRe.MatchString(lower):
		insights.CompanySize = CompanySizeSmall
	case sizeMediumRe.MatchString(lower):
		insights.CompanySize = CompanySizeMedium
	case sizeEnterpriseRe.MatchString(lower):
		insights.CompanySize = CompanySizeEnterprise
	}

	switch {
	case urgencyHighRe.MatchString(lower):
		insights.Urgency = UrgencyHigh
	case urgencyMediumRe.MatchString(lower):
		insights.Urgency = UrgencyMedium
	}

	for _, kw := range goalKeywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		for _, fragment := range goalPatterns[kw].FindAllString(message, -1) {
			fragment = strings.TrimSpace(fragment)
			if fragment != "" {
				insights.MentionedGoals = append(insights.MentionedGoals, fragment)
			}
		}
	}

	return insights
}

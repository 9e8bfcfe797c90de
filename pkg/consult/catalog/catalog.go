package catalog

import "strings"

// UseCase is one industry-specific AI application with its headline benefit.
type UseCase struct {
	UseCase string
	Benefit string
}

// Solution maps a known business pain point to an AI solution approach.
type Solution struct {
	PainPoint  string
	AISolution string
	Impact     string
}

// Industries lists the recognized industry keywords in their fixed
// iteration order. Extraction and lookups both follow this order.
var Industries = []string{
	"healthcare",
	"finance",
	"retail",
	"manufacturing",
	"real estate",
	"legal",
	"marketing",
	"hr",
	"education",
	"logistics",
}

var IndustryUseCases = map[string][]UseCase{
	"healthcare": {
		{UseCase: "Medical image analysis for faster diagnostics", Benefit: "Reduce diagnosis time by 60%"},
		{UseCase: "Patient triage automation", Benefit: "Improve ER wait times"},
		{UseCase: "Drug discovery acceleration", Benefit: "Cut R&D costs by 30%"},
		{UseCase: "Predictive health monitoring", Benefit: "Early intervention"},
	},
	"finance": {
		{UseCase: "Fraud detection in real-time", Benefit: "Prevent 95% of fraudulent transactions"},
		{UseCase: "Algorithmic trading", Benefit: "Optimize investment returns"},
		{UseCase: "Credit risk assessment", Benefit: "Faster loan approvals"},
		{UseCase: "Customer service automation", Benefit: "24/7 support coverage"},
	},
	"retail": {
		{UseCase: "Demand forecasting", Benefit: "Reduce inventory waste by 25%"},
		{UseCase: "Personalized recommendations", Benefit: "Increase sales by 15%"},
		{UseCase: "Visual search capabilities", Benefit: "Enhanced shopping experience"},
		{UseCase: "Dynamic pricing optimization", Benefit: "Maximize revenue"},
	},
	"manufacturing": {
		{UseCase: "Predictive maintenance", Benefit: "Reduce downtime by 40%"},
		{UseCase: "Quality control automation", Benefit: "99.9% defect detection"},
		{UseCase: "Supply chain optimization", Benefit: "Lower logistics costs"},
		{UseCase: "Production scheduling AI", Benefit: "Maximize throughput"},
	},
	"real estate": {
		{UseCase: "Property valuation models", Benefit: "Accurate pricing in seconds"},
		{UseCase: "Lead scoring automation", Benefit: "Focus on hot prospects"},
		{UseCase: "Document processing", Benefit: "Automate contract review"},
	},
	"legal": {
		{UseCase: "Contract analysis", Benefit: "Review 10x faster"},
		{UseCase: "Legal research automation", Benefit: "Find relevant cases instantly"},
		{UseCase: "Document generation", Benefit: "Draft standard agreements"},
	},
	"marketing": {
		{UseCase: "Content generation", Benefit: "Scale content production"},
		{UseCase: "Audience segmentation", Benefit: "Hyper-targeted campaigns"},
		{UseCase: "A/B test optimization", Benefit: "Maximize conversion rates"},
	},
	"hr": {
		{UseCase: "Resume screening", Benefit: "Find best candidates faster"},
		{UseCase: "Employee sentiment analysis", Benefit: "Improve retention"},
		{UseCase: "Interview scheduling", Benefit: "Reduce coordination time"},
	},
	"education": {
		{UseCase: "Personalized learning paths", Benefit: "Improve student outcomes"},
		{UseCase: "Automated grading", Benefit: "Save teacher time"},
		{UseCase: "Student engagement analytics", Benefit: "Identify at-risk students"},
	},
	"logistics": {
		{UseCase: "Route optimization", Benefit: "Reduce fuel costs by 20%"},
		{UseCase: "Delivery time prediction", Benefit: "Improve customer satisfaction"},
		{UseCase: "Warehouse automation", Benefit: "Faster fulfillment"},
	},
}

// GenericUseCases are offered when the industry is unknown or unmapped.
var GenericUseCases = []UseCase{
	{UseCase: "Process automation", Benefit: "Save 10+ hours per week"},
	{UseCase: "Data analysis & insights", Benefit: "Make data-driven decisions"},
	{UseCase: "Customer service automation", Benefit: "24/7 instant responses"},
	{UseCase: "Content generation", Benefit: "Scale marketing efforts"},
}

var PainPointSolutions = []Solution{
	{
		PainPoint:  "manual data entry",
		AISolution: "Intelligent document processing with OCR and NLP",
		Impact:     "Reduce processing time by 80%",
	},
	{
		PainPoint:  "slow customer support",
		AISolution: "AI chatbots with human handoff",
		Impact:     "Instant responses, 24/7 availability",
	},
	{
		PainPoint:  "forecasting errors",
		AISolution: "ML-based demand prediction",
		Impact:     "25-40% improvement in accuracy",
	},
	{
		PainPoint:  "high employee turnover",
		AISolution: "Predictive attrition modeling",
		Impact:     "Proactive retention strategies",
	},
	{
		PainPoint:  "compliance monitoring",
		AISolution: "Automated regulatory scanning",
		Impact:     "Real-time compliance alerts",
	},
	{
		PainPoint:  "inventory management",
		AISolution: "AI-powered stock optimization",
		Impact:     "Reduce carrying costs by 30%",
	},
}

// RelevantUseCases returns up to 3 use cases for a known industry, or the
// full generic set when the industry is unknown or has no table entry.
func RelevantUseCases(industry string) []UseCase {
	if industry != "" {
		if cases, ok := IndustryUseCases[strings.ToLower(industry)]; ok {
			if len(cases) > 3 {
				return cases[:3]
			}
			return cases
		}
	}
	return GenericUseCases
}

// MatchingSolutions returns up to 3 solutions whose pain point matches any
// accumulated pain point by case-insensitive substring in either direction.
func MatchingSolutions(painPoints []string) []Solution {
	if len(painPoints) == 0 {
		return nil
	}

	matched := make([]Solution, 0, 3)
	for _, solution := range PainPointSolutions {
		solutionPain := strings.ToLower(solution.PainPoint)
		for _, pain := range painPoints {
			p := strings.ToLower(pain)
			if strings.Contains(solutionPain, p) || strings.Contains(p, solutionPain) {
				matched = append(matched, solution)
				break
			}
		}
		if len(matched) == 3 {
			break
		}
	}
	return matched
}

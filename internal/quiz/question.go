package quiz

import "sort"

// Exam domains for the AWS Certified Cloud Practitioner (CLF-C02) blueprint.
const (
	DomainConcepts = "Cloud Concepts"
	DomainSecurity = "Security & Compliance"
	DomainTech     = "Cloud Tech & Services"
	DomainBilling  = "Billing, Pricing & Support"
)

// domainOrder is the generation order; ids are assigned contiguously across it.
var domainOrder = []string{DomainConcepts, DomainSecurity, DomainTech, DomainBilling}

// DomainWeights mirrors the CLF-C02 domain weighting. Read-only.
var DomainWeights = map[string]float64{
	DomainConcepts: 0.24,
	DomainSecurity: 0.30,
	DomainTech:     0.34,
	DomainBilling:  0.12,
}

// Question is a single exam item. After normalization a single-answer question
// has exactly 4 options and a multi-answer question exactly 5; Correct holds
// 0-based option indices, sorted ascending. OptionExplanations, when present,
// is parallel to Options.
type Question struct {
	ID                 int      `json:"id"`
	Domain             string   `json:"domain"`
	Prompt             string   `json:"prompt"`
	Options            []string `json:"options"`
	Correct            []int    `json:"correct"`
	Explanation        string   `json:"explanation"`
	Multi              bool     `json:"multi"`
	OptionExplanations []string `json:"option_explanations,omitempty"`
}

func mcq(id int, domain, prompt string, options []string, correct int, explanation string) Question {
	return Question{
		ID:          id,
		Domain:      domain,
		Prompt:      prompt,
		Options:     options,
		Correct:     []int{correct},
		Explanation: explanation,
	}
}

func mrq(id int, domain, prompt string, options []string, correct []int, explanation string) Question {
	sorted := append([]int(nil), correct...)
	sort.Ints(sorted)
	return Question{
		ID:          id,
		Domain:      domain,
		Prompt:      prompt,
		Options:     options,
		Correct:     sorted,
		Explanation: explanation,
		Multi:       true,
	}
}

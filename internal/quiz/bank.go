package quiz

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

var ErrInvalidTotal = errors.New("total must be at least 1")

// generators routes each domain to its question source, in blueprint order.
var generators = map[string]func(startID, need int, rng *rand.Rand) []Question{
	DomainConcepts: ConceptsQuestions,
	DomainSecurity: SecurityQuestions,
	DomainTech:     TechQuestions,
	DomainBilling:  BillingQuestions,
}

// distractorPool pads short multi-response questions during normalization.
var distractorPool = []string{
	"Not applicable",
	"All of the above",
	"None of the above",
	"Use a third-party tool",
	"Refactor the app",
}

const (
	fillerOption   = "None of the above"
	distractorNote = "Distractor."
)

// domainQuotas splits total across the four domains. The first three are
// rounded independently; Billing absorbs the rounding remainder so the four
// quotas always sum to exactly total.
func domainQuotas(total int) map[string]int {
	q := map[string]int{
		DomainConcepts: int(math.Round(float64(total) * DomainWeights[DomainConcepts])),
		DomainSecurity: int(math.Round(float64(total) * DomainWeights[DomainSecurity])),
		DomainTech:     int(math.Round(float64(total) * DomainWeights[DomainTech])),
	}
	q[DomainBilling] = total - q[DomainConcepts] - q[DomainSecurity] - q[DomainTech]
	return q
}

// BuildBank assembles a weighted, normalized, deduplicated, shuffled question
// set. Fully reproducible for a fixed (total, seed) pair. Deduplication runs
// before the final truncation, so the result may hold fewer than total
// questions when the generators produce structural duplicates.
func BuildBank(total, seed int) ([]Question, error) {
	if total < 1 {
		return nil, ErrInvalidTotal
	}
	rng := rand.New(rand.NewSource(int64(seed)))
	quotas := domainQuotas(total)

	bank := make([]Question, 0, total)
	id := 1
	for _, domain := range domainOrder {
		batch := generators[domain](id, quotas[domain], rng)
		id += len(batch)
		bank = append(bank, batch...)
	}

	for i := range bank {
		bank[i] = Normalize(bank[i], rng)
	}
	bank = dedupe(bank)

	rng.Shuffle(len(bank), func(i, j int) { bank[i], bank[j] = bank[j], bank[i] })
	if len(bank) > total {
		bank = bank[:total]
	}
	return bank, nil
}

// Normalize returns a copy of q coerced to the canonical shape: 4 options for
// single-answer, 5 for multi-answer. Options, Correct, and OptionExplanations
// move in lockstep; the input is never mutated.
func Normalize(q Question, rng *rand.Rand) Question {
	out := q
	out.Options = append([]string(nil), q.Options...)
	out.Correct = append([]int(nil), q.Correct...)
	if q.OptionExplanations != nil {
		out.OptionExplanations = append([]string(nil), q.OptionExplanations...)
	}

	switch {
	case out.Multi && len(out.Options) < 5:
		needed := 5 - len(out.Options)
		for _, i := range rng.Perm(len(distractorPool))[:needed] {
			out.Options = append(out.Options, distractorPool[i])
			if out.OptionExplanations != nil {
				out.OptionExplanations = append(out.OptionExplanations, distractorNote)
			}
		}

	case !out.Multi && len(out.Options) > 4:
		correctLabel := out.Options[out.Correct[0]]
		keepLabels := []string{correctLabel}
		var keepNotes []string
		if out.OptionExplanations != nil {
			keepNotes = []string{out.OptionExplanations[out.Correct[0]]}
		}
		var wrongLabels, wrongNotes []string
		for i, o := range out.Options {
			if i == out.Correct[0] {
				continue
			}
			wrongLabels = append(wrongLabels, o)
			if out.OptionExplanations != nil {
				wrongNotes = append(wrongNotes, out.OptionExplanations[i])
			}
		}
		for _, i := range rng.Perm(len(wrongLabels))[:3] {
			keepLabels = append(keepLabels, wrongLabels[i])
			if keepNotes != nil {
				keepNotes = append(keepNotes, wrongNotes[i])
			}
		}
		rng.Shuffle(len(keepLabels), func(i, j int) {
			keepLabels[i], keepLabels[j] = keepLabels[j], keepLabels[i]
			if keepNotes != nil {
				keepNotes[i], keepNotes[j] = keepNotes[j], keepNotes[i]
			}
		})
		for i, o := range keepLabels {
			if o == correctLabel {
				out.Correct = []int{i}
				break
			}
		}
		out.Options = keepLabels
		out.OptionExplanations = keepNotes

	case !out.Multi && len(out.Options) < 4:
		for len(out.Options) < 4 {
			out.Options = append(out.Options, fillerOption)
			if out.OptionExplanations != nil {
				out.OptionExplanations = append(out.OptionExplanations, distractorNote)
			}
		}
	}
	return out
}

// dedupe drops later questions that repeat an earlier (domain, prompt, multi)
// key; first occurrence wins.
func dedupe(bank []Question) []Question {
	seen := make(map[string]struct{}, len(bank))
	out := make([]Question, 0, len(bank))
	for _, q := range bank {
		key := fmt.Sprintf("%s|%s|%t", q.Domain, strings.ToLower(strings.TrimSpace(q.Prompt)), q.Multi)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

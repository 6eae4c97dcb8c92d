package quiz

import (
	"fmt"
	"math/rand"
)

// conceptsFill is the closed set of fill categories for the Cloud Concepts
// domain. Every entry returns exactly one question, so the fill loop below
// always makes progress.
var conceptsFill = []func(id int, rng *rand.Rand) Question{
	// well-architected
	func(id int, rng *rand.Rand) Question {
		pillars := []string{"Security", "Reliability", "Performance Efficiency", "Cost Optimization", "Sustainability", "Operational Excellence"}
		wrong := []string{"Portability", "User Experience", "Refactoring", "Latency budget"}
		opts := make([]string, 0, 4)
		for _, i := range rng.Perm(len(pillars))[:2] {
			opts = append(opts, pillars[i])
		}
		for _, i := range rng.Perm(len(wrong))[:2] {
			opts = append(opts, wrong[i])
		}
		rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
		correct := 0
		for i, o := range opts {
			for _, p := range pillars {
				if o == p {
					correct = i
				}
			}
		}
		return mcq(id, DomainConcepts,
			"Which option is a pillar of the AWS Well-Architected Framework?",
			opts, correct,
			"The six pillars are: Operational Excellence, Security, Reliability, Performance Efficiency, Cost Optimization, Sustainability.")
	},
	// global infrastructure
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainConcepts,
			"Which option is used by Amazon CloudFront to cache content closer to users?",
			[]string{"Region", "Availability Zone", "Edge location", "Data rack"},
			2,
			"CloudFront uses edge locations to cache content at the network edge.")
	},
	// economics
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainConcepts,
			"Which cost concept lets you pay only for what you use without long-term contracts?",
			[]string{"Reserved Instances", "Savings Plans", "Pay-as-you-go", "Dedicated Hosts"},
			2,
			"Pay-as-you-go is the on-demand, consumption-based model.")
	},
}

// ConceptsQuestions generates the Cloud Concepts bank: a fixed static core,
// deterministic parametric variants, then a seeded fill loop up to need.
func ConceptsQuestions(startID, need int, rng *rand.Rand) []Question {
	if need <= 0 {
		return nil
	}
	q := make([]Question, 0, need)
	id := startID

	q = append(q, mcq(id, DomainConcepts,
		"Which AWS pricing advantage directly replaces high up-front capital expense with variable expense?",
		[]string{"Global reach", "Pay-as-you-go", "Shared responsibility", "Managed services"},
		1,
		"Pay-as-you-go converts CapEx to OpEx, which is core to cloud economics."))
	id++

	q = append(q, mcq(id, DomainConcepts,
		"Which AWS concept describes automatically acquiring or releasing resources to match demand?",
		[]string{"Fault tolerance", "Elasticity", "Global footprint", "Agility"},
		1,
		"Elasticity means scaling capacity up or down automatically to meet demand."))
	id++

	q = append(q, mrq(id, DomainConcepts,
		"Select TWO pillars of the AWS Well-Architected Framework.",
		[]string{"Observability", "Security", "Operational Excellence", "Portability", "Gamification"},
		[]int{1, 2},
		"Security and Operational Excellence are two of the six pillars (also Reliability, Performance Efficiency, Cost Optimization, Sustainability)."))
	id++

	q = append(q, mcq(id, DomainConcepts,
		"Which AWS global infrastructure component is a collection of data centers within a Region?",
		[]string{"Edge location", "Availability Zone", "Local Zone", "Wavelength Zone"},
		1,
		"An Availability Zone is one or more discrete data centers within a Region."))
	id++

	// Parametric benefit-matching variants, deterministic given position.
	benefits := []struct {
		text    string
		correct int
	}{
		{"faster experimentation and reduced time-to-market", 1},
		{"adding and removing capacity automatically", 2},
		{"serving users from locations closer to them", 0},
		{"avoiding over-provisioning for peak", 2},
	}
	for _, b := range benefits {
		q = append(q, mcq(id, DomainConcepts,
			fmt.Sprintf("Which benefit of cloud computing MOST helps with %s?", b.text),
			[]string{"Global replication", "Pay-as-you-go", "Elasticity", "Edge networking"},
			b.correct,
			"Match the benefit to the scenario; elasticity handles dynamic capacity needs, pay-as-you-go helps avoid CapEx, global reach reduces latency."))
		id++
	}

	benefitSets := []struct {
		opts    []string
		correct []int
	}{
		{[]string{"Agility", "CapEx commitment", "Elasticity", "Vendor lock-in", "Manual scaling"}, []int{0, 2}},
		{[]string{"High availability", "Manual procurement", "Global footprint", "Long hardware lead time", "Tape backups"}, []int{0, 2}},
	}
	for _, s := range benefitSets {
		q = append(q, mrq(id, DomainConcepts,
			"Which TWO are benefits commonly associated with AWS Cloud?",
			s.opts, s.correct,
			"Agility, elasticity, HA, and global reach are key cloud benefits."))
		id++
	}

	// A deliberately short multi-response item; the bank normalization pass
	// pads it to five options with distractors.
	short := mrq(id, DomainConcepts,
		"Which TWO cloud characteristics reduce the need for capacity forecasting?",
		[]string{"Elasticity", "Fixed contracts", "Pay-as-you-go", "Hardware refresh cycles"},
		[]int{0, 2},
		"Elastic capacity plus consumption pricing removes most up-front capacity planning.")
	short.OptionExplanations = []string{
		"Capacity follows demand automatically.",
		"Long commitments are what the cloud model avoids.",
		"You pay for actual usage, not forecasts.",
		"Refresh cycles are an on-premises concern.",
	}
	q = append(q, short)
	id++

	for len(q) < need {
		fill := conceptsFill[rng.Intn(len(conceptsFill))]
		q = append(q, fill(id, rng))
		id++
	}
	return q[:need]
}

package quiz

import (
	"fmt"
	"math/rand"
)

var billingFill = []func(id int, rng *rand.Rand) Question{
	// pricing calculator
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainBilling,
			"Which tool estimates costs BEFORE you deploy resources?",
			[]string{"AWS Pricing Calculator", "AWS Cost Explorer", "AWS Budgets", "AWS Trusted Advisor"},
			0,
			"Use the AWS Pricing Calculator to estimate costs pre-deployment.")
	},
	// trusted advisor
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainBilling,
			"Which service provides proactive checks for cost optimization, performance, security, fault tolerance, and service quotas?",
			[]string{"AWS Inspector", "AWS Trusted Advisor", "AWS Compute Optimizer", "AWS Systems Manager"},
			1,
			"Trusted Advisor runs best-practice checks across multiple categories.")
	},
}

// BillingQuestions generates the Billing, Pricing & Support bank. The fill
// phase emits the fixed support-plan situations first, then seeded draws.
func BillingQuestions(startID, need int, rng *rand.Rand) []Question {
	if need <= 0 {
		return nil
	}
	q := make([]Question, 0, need)
	id := startID

	q = append(q, mcq(id, DomainBilling,
		"Which tool helps you visualize and analyze AWS spend over time?",
		[]string{"AWS TCO Calculator", "AWS Pricing Calculator", "AWS Cost Explorer", "AWS Budgets"},
		2,
		"Cost Explorer analyzes/spots trends in historical/forecasted spend."))
	id++

	q = append(q, mcq(id, DomainBilling,
		"Which feature lets you set thresholds and receive alerts when costs exceed targets?",
		[]string{"AWS Cost Explorer", "AWS Budgets", "AWS Organizations", "AWS Billing Conductor"},
		1,
		"AWS Budgets lets you set cost/usage thresholds and alerts."))
	id++

	q = append(q, mcq(id, DomainBilling,
		"Which option typically offers the LOWEST compute price for fault-tolerant, flexible workloads?",
		[]string{"On-Demand Instances", "Savings Plans", "Spot Instances", "Dedicated Hosts"},
		2,
		"Spot Instances offer steep discounts for interruption-tolerant workloads."))
	id++

	q = append(q, mrq(id, DomainBilling,
		"Select TWO features of the AWS Business Support plan.",
		[]string{"24x7 access to Cloud Support engineers", "Technical Account Manager (TAM) included", "Trusted Advisor full checks", "Response times only during business hours", "Architected guidance via TAM only"},
		[]int{0, 2},
		"Business includes 24x7 support and full Trusted Advisor checks; a dedicated TAM is part of Enterprise tiers."))
	id++

	purchasing := []struct {
		text    string
		opts    []string
		correct int
		expl    string
	}{
		{"steady, predictable 24x7 workload for a year",
			[]string{"On-Demand", "Savings Plans", "Spot", "Dedicated Hosts"}, 1,
			"Compute Savings Plans or RIs (conceptually) suit steady usage; they offer committed-use discounts."},
		{"batch jobs that can be interrupted and rescheduled",
			[]string{"Savings Plans", "Spot Instances", "Dedicated Hosts", "On-Demand"}, 1,
			"Spot is ideal for interruption-tolerant, flexible start/stop workloads."},
		{"unpredictable short-lived spikes",
			[]string{"Spot", "On-Demand", "Savings Plans", "Dedicated Hosts"}, 1,
			"On-Demand fits spiky, unpredictable usage without commitment."},
	}
	for _, s := range purchasing {
		q = append(q, mcq(id, DomainBilling,
			fmt.Sprintf("Which purchasing model is MOST cost-effective for %s?", s.text),
			s.opts, s.correct, s.expl))
		id++
	}

	q = append(q, mcq(id, DomainBilling,
		"Which AWS service provides consolidated billing across multiple AWS accounts?",
		[]string{"AWS Control Tower", "AWS Organizations", "AWS Billing Conductor", "AWS License Manager"},
		1,
		"AWS Organizations offers consolidated billing and account management."))
	id++

	supportSituations := []struct {
		text    string
		opts    []string
		correct int
		expl    string
	}{
		{"need guidance reviewing architecture for production launch",
			[]string{"Developer", "Business", "Enterprise On-Ramp", "Enterprise"}, 1,
			"Business includes architectural guidance and faster response; Enterprise tiers add TAM and more."},
		{"mission-critical workload requiring a designated TAM",
			[]string{"Developer", "Business", "Enterprise On-Ramp", "Enterprise"}, 3,
			"Enterprise includes a TAM; Enterprise On-Ramp offers TAM-like engagement for critical workloads (but not full Enterprise)."},
	}
	next := 0
	for len(q) < need {
		if next < len(supportSituations) {
			s := supportSituations[next]
			q = append(q, mcq(id, DomainBilling,
				fmt.Sprintf("Which support plan is MOST appropriate if you %s?", s.text),
				s.opts, s.correct, s.expl))
			id++
			next++
			continue
		}
		fill := billingFill[rng.Intn(len(billingFill))]
		q = append(q, fill(id, rng))
		id++
	}
	return q[:need]
}

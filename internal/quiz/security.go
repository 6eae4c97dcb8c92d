package quiz

import (
	"fmt"
	"math/rand"
)

var securityFill = []func(id int, rng *rand.Rand) Question{
	// iam
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainSecurity,
			"Which IAM entity should an application assume to obtain temporary credentials securely?",
			[]string{"IAM user with long-lived keys", "IAM role", "Root user", "Group"},
			1,
			"Use IAM roles to provide temporary credentials via STS.")
	},
	// network
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainSecurity,
			"Which option blocks or allows traffic at the subnet boundary and is stateless?",
			[]string{"Security group", "NACL", "VPC endpoint policy", "Route table"},
			1,
			"Network ACLs are stateless and operate at the subnet boundary.")
	},
	// compliance
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainSecurity,
			"Where can you download AWS compliance reports (e.g., SOC) for your auditors?",
			[]string{"AWS Artifact", "AWS Organizations", "AWS Secrets Manager", "AWS License Manager"},
			0,
			"AWS Artifact provides on-demand access to AWS compliance reports and agreements.")
	},
}

// SecurityQuestions generates the Security & Compliance bank.
func SecurityQuestions(startID, need int, rng *rand.Rand) []Question {
	if need <= 0 {
		return nil
	}
	q := make([]Question, 0, need)
	id := startID

	q = append(q, mcq(id, DomainSecurity,
		"Under the AWS shared responsibility model, who is responsible for patching the hypervisor?",
		[]string{"Customer", "AWS", "Third-party auditor", "Managed Service Provider"},
		1,
		"AWS secures the infrastructure that runs the services; customers secure what they put in the cloud."))
	id++

	stateful := mcq(id, DomainSecurity,
		"Which control is stateful and operates at the instance level?",
		[]string{"Network ACL", "Security group", "IAM policy", "WAF rule"},
		1,
		"Security groups are stateful, attached to ENIs/instances; NACLs are stateless.")
	stateful.OptionExplanations = []string{
		"NACLs are stateless and evaluated at the subnet boundary.",
		"Security groups track connection state per instance.",
		"IAM policies govern API permissions, not packet flow.",
		"WAF rules filter HTTP requests, not instance traffic.",
	}
	q = append(q, stateful)
	id++

	q = append(q, mrq(id, DomainSecurity,
		"Select TWO recommended IAM best practices.",
		[]string{"Use long-lived access keys in code", "Enable MFA for sensitive accounts", "Grant least privilege", "Share root credentials for collaboration", "Rotate credentials regularly"},
		[]int{1, 2},
		"Enable MFA and follow least-privilege; avoid embedding long-lived keys or using the root user."))
	id++

	q = append(q, mcq(id, DomainSecurity,
		"Which service records API activity across your AWS account(s)?",
		[]string{"Amazon CloudWatch", "AWS CloudTrail", "AWS Config", "Amazon GuardDuty"},
		1,
		"CloudTrail records account API activity; CloudWatch is metrics/logs; Config tracks configuration state; GuardDuty is threat detection."))
	id++

	// Shared-responsibility variants.
	items := []struct {
		text  string
		owner string
	}{
		{"encryption of data IN transit for your applications", "Customer"},
		{"physical security of data centers", "AWS"},
		{"patching guest OS on Amazon EC2", "Customer"},
		{"availability of Managed Services infrastructure", "AWS"},
	}
	for _, it := range items {
		opts := []string{"Customer", "AWS", "Both share", "No one"}
		correct := 0
		if it.owner == "AWS" {
			correct = 1
		}
		q = append(q, mcq(id, DomainSecurity,
			fmt.Sprintf("Under shared responsibility, who is responsible for %s?", it.text),
			opts, correct,
			"AWS secures the cloud; you secure what you run IN the cloud. Some areas are shared (e.g., certain encryption responsibilities)."))
		id++
	}

	q = append(q, mrq(id, DomainSecurity,
		"Which TWO are primarily detective controls?",
		[]string{"AWS CloudTrail", "AWS Shield Advanced", "Amazon CloudWatch Alarms", "AWS WAF", "AWS KMS"},
		[]int{0, 2},
		"CloudTrail and CloudWatch Alarms detect/report events. Shield/WAF are protective; KMS manages encryption keys."))
	id++

	for len(q) < need {
		fill := securityFill[rng.Intn(len(securityFill))]
		q = append(q, fill(id, rng))
		id++
	}
	return q[:need]
}

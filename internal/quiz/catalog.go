package quiz

// optionCatalog maps option labels that recur across the banks to a one-line
// rationale. Built once at init, read-only afterwards; used as the fallback
// when a question carries no per-option explanations.
var optionCatalog = map[string]string{
	// Concepts
	"Pay-as-you-go":      "Consumption-based pricing that converts CapEx into OpEx.",
	"Elasticity":         "Capacity scales up and down automatically with demand.",
	"Agility":            "Provision resources in minutes to experiment faster.",
	"Global reach":       "Regions and edge locations serve users with low latency worldwide.",
	"Region":             "A geographic area containing multiple Availability Zones.",
	"Availability Zone":  "One or more discrete data centers within a Region.",
	"Edge location":      "CloudFront point of presence that caches content near users.",
	"High availability":  "Designing across AZs so failures do not interrupt service.",
	"Fault tolerance":    "The system keeps operating through component failures.",
	"Global footprint":   "AWS infrastructure spanning many geographic Regions.",

	// Security
	"IAM role":            "Grants temporary credentials via STS; preferred over long-lived keys.",
	"Security group":      "Stateful virtual firewall attached at the instance/ENI level.",
	"Network ACL":         "Stateless filter evaluated at the subnet boundary.",
	"NACL":                "Stateless filter evaluated at the subnet boundary.",
	"AWS CloudTrail":      "Records API activity across the account for auditing.",
	"Amazon CloudWatch":   "Collects metrics and logs; drives alarms and dashboards.",
	"AWS Config":          "Tracks resource configuration state and drift over time.",
	"Amazon GuardDuty":    "Managed threat detection using account telemetry.",
	"AWS Artifact":        "Self-service portal for AWS compliance reports and agreements.",
	"AWS KMS":             "Creates and manages encryption keys.",
	"AWS WAF":             "Filters malicious web requests at the application layer.",
	"AWS Shield Advanced": "Managed DDoS protection with response support.",

	// Technology
	"AWS Lambda":         "Serverless function compute; runs code in response to events.",
	"Amazon EC2":         "Virtual machines with full control over OS and networking.",
	"AWS Fargate":        "Runs containers without managing the underlying servers.",
	"Amazon EKS":         "Managed Kubernetes control plane.",
	"Amazon Lightsail":   "Simplified VPS bundles for small workloads.",
	"Amazon S3":          "Durable object storage with virtually unlimited scale.",
	"Amazon EBS":         "Block storage volumes for EC2 instances.",
	"Amazon EFS":         "Elastic shared file storage over NFS.",
	"Amazon RDS":         "Managed relational database engines.",
	"Amazon DynamoDB":    "Serverless key-value/document database with millisecond latency.",
	"Amazon Redshift":    "Managed data warehouse for analytics.",
	"Amazon Aurora":      "MySQL/PostgreSQL-compatible relational engine built for the cloud.",
	"Amazon SQS":         "Managed message queue that decouples components.",
	"Amazon SNS":         "Pub/sub notifications with fan-out delivery.",
	"Amazon EventBridge": "Event bus for routing application and AWS events.",
	"Amazon Route 53":    "Global DNS and traffic routing.",
	"VPC endpoints":      "Private connectivity to AWS services without an Internet Gateway.",
	"NAT Gateway":        "Outbound internet access for private subnets.",
	"Amazon CloudFront":  "Content delivery network backed by edge locations.",

	// Billing
	"AWS Cost Explorer":      "Visualizes and analyzes historical and forecasted spend.",
	"AWS Budgets":            "Alerts when cost or usage crosses a threshold you set.",
	"AWS Pricing Calculator": "Estimates costs before resources are deployed.",
	"AWS Organizations":      "Multi-account management with consolidated billing.",
	"AWS Trusted Advisor":    "Best-practice checks across cost, security, and resilience.",
	"Spot Instances":         "Deep discounts for interruption-tolerant workloads.",
	"Savings Plans":          "Committed-use discounts for steady workloads.",
	"On-Demand":              "No commitment; pay per second or hour of use.",
	"On-Demand Instances":    "No commitment; pay per second or hour of use.",
	"Dedicated Hosts":        "Physical servers dedicated to your account, often for licensing.",
	"Reserved Instances":     "Capacity-plus-discount commitment for one or three years.",
}

// OptionNote returns the catalog rationale for an option label with a
// correctness-dependent suffix. Unknown labels get a generic pointer.
func OptionNote(label string, correct bool) string {
	note, ok := optionCatalog[label]
	if !ok {
		note = "Review this service or concept in the CLF-C02 exam guide."
	}
	if correct {
		return note + " Correct here."
	}
	return note + " Not the best fit for this question."
}

package quiz

import (
	"fmt"
	"math/rand"
)

var techFill = []func(id int, rng *rand.Rand) Question{
	// db
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainTech,
			"Which database service offers single-digit millisecond latency at any scale and is key-value / document?",
			[]string{"Amazon Aurora", "Amazon DynamoDB", "Amazon Redshift", "Amazon RDS for Oracle"},
			1,
			"DynamoDB is a serverless NoSQL database with single-digit ms latency.")
	},
	// net
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainTech,
			"Which feature enables private connectivity between a VPC and AWS services without using an Internet Gateway?",
			[]string{"VPC peering", "AWS Direct Connect", "VPC endpoints", "NAT Gateway"},
			2,
			"VPC endpoints provide private connectivity to supported AWS services.")
	},
	// monitor
	func(id int, _ *rand.Rand) Question {
		return mcq(id, DomainTech,
			"Which service is primarily used for metrics and alarms?",
			[]string{"AWS CloudTrail", "Amazon CloudWatch", "AWS Config", "AWS Audit Manager"},
			1,
			"CloudWatch collects metrics/logs and supports alarms; CloudTrail is for API auditing.")
	},
}

// TechQuestions generates the Cloud Tech & Services bank.
func TechQuestions(startID, need int, rng *rand.Rand) []Question {
	if need <= 0 {
		return nil
	}
	q := make([]Question, 0, need)
	id := startID

	q = append(q, mcq(id, DomainTech,
		"Which service is serverless compute that runs code in response to events?",
		[]string{"Amazon EC2", "AWS Lambda", "Amazon ECS on EC2", "Amazon Lightsail"},
		1,
		"AWS Lambda is serverless function compute; no server management."))
	id++

	q = append(q, mrq(id, DomainTech,
		"Select TWO services that are considered GLOBAL (not strictly Regional).",
		[]string{"Amazon VPC", "Amazon S3", "Amazon Route 53", "AWS Identity and Access Management (IAM)", "Amazon EBS"},
		[]int{2, 3},
		"Route 53 and IAM are global services."))
	id++

	q = append(q, mcq(id, DomainTech,
		"Which storage option is object storage designed for high durability and virtually unlimited scale?",
		[]string{"Amazon EBS", "Amazon EFS", "Amazon S3", "AWS Storage Gateway"},
		2,
		"Amazon S3 is object storage with high durability and virtually unlimited scale."))
	id++

	// Oversized on purpose; normalization trims it to the correct option plus
	// three sampled distractors.
	wide := mcq(id, DomainTech,
		"You need a fully managed relational database engine. Which is the BEST fit?",
		[]string{"Amazon DynamoDB", "Amazon RDS", "Amazon Redshift", "Amazon OpenSearch Service", "Amazon Neptune", "Amazon Keyspaces"},
		1,
		"Amazon RDS is a managed relational database service.")
	wide.OptionExplanations = []string{
		"DynamoDB is NoSQL key-value/document.",
		"RDS manages relational engines end to end.",
		"Redshift is a data warehouse, not OLTP.",
		"OpenSearch is for search and log analytics.",
		"Neptune is a graph database.",
		"Keyspaces is Cassandra-compatible NoSQL.",
	}
	q = append(q, wide)
	id++

	computeScenarios := []struct {
		text    string
		opts    []string
		correct int
		expl    string
	}{
		{"run containers without managing servers",
			[]string{"Amazon ECS on EC2", "AWS Fargate", "Amazon EKS", "Amazon EMR"}, 1,
			"Fargate runs containers without managing servers."},
		{"access VMs with max control over OS and networking",
			[]string{"AWS Lambda", "Amazon Lightsail", "Amazon EC2", "AWS Batch"}, 2,
			"EC2 provides granular control over instances and OS."},
		{"simple VPS for blogs or small apps",
			[]string{"Amazon Lightsail", "Amazon EKS", "AWS Glue", "Amazon MQ"}, 0,
			"Lightsail is simplified VPS hosting for small workloads."},
	}
	for _, s := range computeScenarios {
		q = append(q, mcq(id, DomainTech,
			fmt.Sprintf("Which is the BEST choice to %s?", s.text),
			s.opts, s.correct, s.expl))
		id++
	}

	s3Variants := []struct {
		text    string
		opts    []string
		correct int
		expl    string
	}{
		{"infrequently accessed data that must be immediately retrievable",
			[]string{"S3 Standard-IA", "S3 One Zone-IA", "S3 Glacier Flexible Retrieval", "S3 Glacier Deep Archive"}, 0,
			"Standard-IA is for infrequent access with milliseconds retrieval across multiple AZs."},
		{"archival data with the lowest storage cost and hours retrieval time",
			[]string{"S3 Standard", "S3 Glacier Instant Retrieval", "S3 Glacier Deep Archive", "S3 Intelligent-Tiering"}, 2,
			"Deep Archive offers the lowest cost with retrieval in hours."},
		{"unknown/variable access patterns and you want auto-tiering",
			[]string{"S3 Intelligent-Tiering", "S3 Standard", "S3 One Zone-IA", "S3 Glacier Flexible Retrieval"}, 0,
			"Intelligent-Tiering optimizes cost by auto-moving objects between tiers."},
	}
	for _, s := range s3Variants {
		q = append(q, mcq(id, DomainTech,
			fmt.Sprintf("Which S3 storage class fits %s?", s.text),
			s.opts, s.correct, s.expl))
		id++
	}

	q = append(q, mcq(id, DomainTech,
		"Which service provides queueing to decouple microservices?",
		[]string{"Amazon SNS", "Amazon SQS", "Amazon EventBridge", "AWS Step Functions"},
		1,
		"SQS is a fully managed message queue to decouple components."))
	id++

	q = append(q, mcq(id, DomainTech,
		"Which service is a pub/sub notification service (fan-out)?",
		[]string{"Amazon SQS", "Amazon SNS", "AWS Step Functions", "Amazon MQ"},
		1,
		"SNS is a pub/sub notification service; SQS is queueing."))
	id++

	for len(q) < need {
		fill := techFill[rng.Intn(len(techFill))]
		q = append(q, fill(id, rng))
		id++
	}
	return q[:need]
}

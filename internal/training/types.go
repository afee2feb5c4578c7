package training

import "time"

// ExampleType labels a curated training example.
type ExampleType string

const (
	ExampleCustomerInquiry  ExampleType = "customer_inquiry"
	ExampleExistingCustomer ExampleType = "existing_customer"
	ExampleComplaint        ExampleType = "complaint"
	ExamplePraise           ExampleType = "praise"
	ExampleInternalData     ExampleType = "internal_data"
)

// Quality grades how good the curated response was.
type Quality string

const (
	QualityExcellent        Quality = "excellent"
	QualityGood             Quality = "good"
	QualityNeedsImprovement Quality = "needs_improvement"
)

// Example is one curated (customer message, ideal response) pair taken from
// the business's real conversation history. Examples are immutable and used
// only for similarity lookup, never for live learning.
type Example struct {
	ID               string      `json:"id"`
	CustomerMessage  string      `json:"customerMessage"`
	ExpectedResponse string      `json:"expectedResponse"`
	Context          string      `json:"context"`
	Type             ExampleType `json:"messageType"`
	Quality          Quality     `json:"responseQuality"`
	Tags             []string    `json:"tags"`
	BusinessLessons  []string    `json:"businessLessons"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// Suggestion is the matcher's output for one input message.
type Suggestion struct {
	SuggestedResponse string   `json:"suggestedResponse"`
	Confidence        float64  `json:"confidence"`
	Reasoning         string   `json:"reasoning"`
	BusinessLessons   []string `json:"businessLessons"`
	MessageType       string   `json:"messageType"`
}

// Insights summarizes the loaded catalogue for the admin surface.
type Insights struct {
	TotalExamples       int            `json:"totalExamples"`
	MessageTypes        map[string]int `json:"messageTypes"`
	QualityDistribution map[string]int `json:"qualityDistribution"`
	CommonTags          []string       `json:"commonTags"`
	BusinessLessons     []string       `json:"businessLessons"`
}

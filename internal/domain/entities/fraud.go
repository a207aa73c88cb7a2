package entities

// FraudAssessment is the outcome of scoring an inbound payment request.
//
// Score is an additive integer; Reasons lists every rule that contributed, in
// evaluation order. The decision policy (reject/review/allow) belongs to the
// caller, not to the scorer.

type FraudAssessment struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

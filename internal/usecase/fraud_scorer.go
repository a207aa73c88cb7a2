package usecase

import (
	"strings"
	"time"

	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/domain/entities"
	"github.com/FirstdeveloperMatoGrosso/isapass-payments/internal/infrastructure/ratelimit"
)

// Rule weights are additive and independent; every rule runs on every request.
// The values mirror the storefront's original heuristics and are policy knobs,
// not protocol constants.
const (
	fraudWeightAnonymousOrigin = 30
	fraudWeightHighVelocity    = 20
	fraudWeightOvernight       = 10
	fraudWeightHighValue       = 15
	fraudWeightWeakDevice      = 25

	// velocityRequestLimit is the number of prior requests per document that
	// is still considered normal within the counter window.
	velocityRequestLimit = 3
)

// FraudInput is the request metadata evaluated by the scorer.
type FraudInput struct {
	Origin      string
	UserAgent   string
	AmountCents int64
	Document    string
}

// FraudScorer computes heuristic risk scores for inbound payment requests.
//
// The scorer only produces a score plus contributing reasons; the
// reject/review thresholds live with the caller.

type FraudScorer struct {
	highValueCents int64
	counter        *ratelimit.WindowCounter
	now            func() time.Time
}

func NewFraudScorer(highValueCents int64, counter *ratelimit.WindowCounter) *FraudScorer {
	if highValueCents <= 0 {
		highValueCents = 100000 // R$ 1000,00
	}
	return &FraudScorer{
		highValueCents: highValueCents,
		counter:        counter,
		now:            time.Now,
	}
}

// Score evaluates all rules and records one velocity observation for the
// document identity.
func (s *FraudScorer) Score(in FraudInput) entities.FraudAssessment {
	a := entities.FraudAssessment{Reasons: make([]string, 0, 5)}

	origin := strings.ToLower(strings.TrimSpace(in.Origin))
	if origin == "" || origin == "unknown" || origin == "anonymous" {
		a.Score += fraudWeightAnonymousOrigin
		a.Reasons = append(a.Reasons, "unresolvable request origin")
	}

	if s.counter != nil {
		prior := s.counter.Incr("doc:"+stripNonDigits(in.Document)) - 1
		if prior > velocityRequestLimit {
			a.Score += fraudWeightHighVelocity
			a.Reasons = append(a.Reasons, "request volume above limit for this document")
		}
	}

	if hour := s.now().Hour(); hour >= 0 && hour <= 5 {
		a.Score += fraudWeightOvernight
		a.Reasons = append(a.Reasons, "request placed during overnight window")
	}

	if in.AmountCents > s.highValueCents {
		a.Score += fraudWeightHighValue
		a.Reasons = append(a.Reasons, "amount above high-value threshold")
	}

	ua := strings.TrimSpace(in.UserAgent)
	if ua == "" || strings.EqualFold(ua, "unknown") || len(ua) < 10 {
		a.Score += fraudWeightWeakDevice
		a.Reasons = append(a.Reasons, "missing or weak device signature")
	}

	return a
}

package model

import "time"

// ContractStatus is the overall compliance outcome of a review
type ContractStatus string

const (
	StatusCompliant    ContractStatus = "compliant"
	StatusNeedsReview  ContractStatus = "needs-review"
	StatusNonCompliant ContractStatus = "non-compliant"
)

// RiskLevel classifies the residual risk of a reviewed contract
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Contract is a completed contract compliance review
type Contract struct {
	ID                 string         `json:"id" bson:"contract_id"`
	Name               string         `json:"name" bson:"name"`
	Vendor             string         `json:"vendor" bson:"vendor"`
	ReviewDate         time.Time      `json:"reviewDate" bson:"review_date"`
	Status             ContractStatus `json:"status" bson:"status"`
	RiskLevel          RiskLevel      `json:"riskLevel" bson:"risk_level"`
	Reviewer           string         `json:"reviewer" bson:"reviewer"`
	TermMatchingRate   float64        `json:"termMatchingRate" bson:"term_matching_rate"`
	PointsMatchingRate float64        `json:"pointsMatchingRate" bson:"points_matching_rate"`

	// External tracking links
	JiraEngagementURL string `json:"jiraEngagementId" bson:"jira_engagement_url"`
	AthenaURL         string `json:"athenaId" bson:"athena_url"`

	// Standard the contract was reviewed against (standard id, e.g. "gdpr")
	Standard string `json:"standard" bson:"standard"`

	// Days the review took to complete
	ReviewDurationDays int `json:"reviewDuration" bson:"review_duration_days"`

	// AttestedAt is set when a reviewer signs off the full review
	AttestedAt time.Time `json:"attestedAt,omitempty" bson:"attested_at,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

// JiraID returns the short ticket id from the Jira engagement URL
func (c *Contract) JiraID() string {
	return lastURLSegment(c.JiraEngagementURL)
}

// AthenaID returns the short review id from the Athena URL
func (c *Contract) AthenaID() string {
	return lastURLSegment(c.AthenaURL)
}

func lastURLSegment(url string) string {
	if url == "" {
		return ""
	}
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			return url[i+1:]
		}
	}
	return url
}

// MatchingBand buckets a matching rate for filtering and badge colors
type MatchingBand string

const (
	BandExcellent MatchingBand = "excellent" // >= 90
	BandGood      MatchingBand = "good"      // 70-89
	BandFair      MatchingBand = "fair"      // 50-69
	BandPoor      MatchingBand = "poor"      // < 50
)

// BandForRate returns the performance band for a matching rate percentage
func BandForRate(rate float64) MatchingBand {
	switch {
	case rate >= 90:
		return BandExcellent
	case rate >= 70:
		return BandGood
	case rate >= 50:
		return BandFair
	default:
		return BandPoor
	}
}

package model

import "time"

// StandardStatus tells whether a review standard is still accepting new
// reviews or has been superseded by a newer revision.
type StandardStatus string

const (
	StandardActive     StandardStatus = "active"
	StandardDeprecated StandardStatus = "deprecated"
)

// ReviewStandard describes one supported review type, for example the
// GDPR or SOC 2 checklist a contract gets reviewed against.
type ReviewStandard struct {
	TypeID        string         `json:"typeId" yaml:"typeId" bson:"type_id"`
	TypeName      string         `json:"typeName" yaml:"typeName" bson:"type_name"`
	PublishedDate time.Time      `json:"publishedDate" yaml:"publishedDate" bson:"published_date"`
	Author        string         `json:"author" yaml:"author" bson:"author"`
	Version       string         `json:"typeVersionId" yaml:"typeVersionId" bson:"version"`
	Status        StandardStatus `json:"status" yaml:"status" bson:"status"`
}

// IsActive reports whether new reviews may be opened against this standard.
func (s ReviewStandard) IsActive() bool {
	return s.Status == StandardActive
}

// ReviewRequestItem is one entry of the request-review submenu. Each item
// links out to the intake form for that review type.
type ReviewRequestItem struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// ActiveStandards filters a standard list down to the active entries,
// preserving order.
func ActiveStandards(standards []ReviewStandard) []ReviewStandard {
	out := make([]ReviewStandard, 0, len(standards))
	for _, s := range standards {
		if s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

// DeprecatedStandards filters a standard list down to the deprecated
// entries, preserving order.
func DeprecatedStandards(standards []ReviewStandard) []ReviewStandard {
	out := make([]ReviewStandard, 0, len(standards))
	for _, s := range standards {
		if !s.IsActive() {
			out = append(out, s)
		}
	}
	return out
}

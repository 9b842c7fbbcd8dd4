package charts

import (
	"strings"
	"testing"
	"time"

	"github.com/complyboard/complyboard/model"
)

func chartContracts() []*model.Contract {
	return []*model.Contract{
		{
			ID: "1", Name: "Master Service Agreement",
			ReviewDate:         time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC),
			TermMatchingRate:   95.2,
			PointsMatchingRate: 92.8,
			ReviewDurationDays: 5,
		},
		{
			ID: "2", Name: "SaaS Subscription Agreement",
			ReviewDate:         time.Date(2025, time.October, 7, 0, 0, 0, 0, time.UTC),
			TermMatchingRate:   78.5,
			PointsMatchingRate: 81.3,
			ReviewDurationDays: 9,
		},
	}
}

func TestComplianceGapsBarEmbeds(t *testing.T) {
	gaps := []GapCount{
		{Term: "Data Breach", Gaps: 42},
		{Term: "Consent", Gaps: 17},
	}
	html := EmbedHTML(ComplianceGapsBar(gaps))

	if !strings.Contains(html, "echarts.init") {
		t.Error("embed fragment is missing the init script")
	}
	if !strings.Contains(html, "Data Breach") {
		t.Error("embed fragment is missing the term labels")
	}
}

func TestReviewDurationBarEmbeds(t *testing.T) {
	html := EmbedHTML(ReviewDurationBar(chartContracts()))

	if !strings.Contains(html, "Master Service Agreement") {
		t.Error("embed fragment is missing contract names")
	}
}

func TestTermStatusStackedBarEmbeds(t *testing.T) {
	rows := []TermStatusCount{
		{Term: "Data Encryption Requirements", Met: 14, Partial: 4, Missing: 2},
	}
	html := EmbedHTML(TermStatusStackedBar(rows))

	for _, series := range []string{"Terms Met", "Partially Met", "Terms Missing"} {
		if !strings.Contains(html, series) {
			t.Errorf("embed fragment is missing series %q", series)
		}
	}
}

func TestMatchingRateLineEmbeds(t *testing.T) {
	html := EmbedHTML(MatchingRateLine(chartContracts()))

	if !strings.Contains(html, "Term Matching") || !strings.Contains(html, "Points Matching") {
		t.Error("embed fragment is missing rate series")
	}
	// contracts arrive newest first; the line runs oldest first
	if strings.Index(html, "Oct 7") > strings.Index(html, "Oct 8") {
		t.Error("trend dates are not oldest first")
	}
}

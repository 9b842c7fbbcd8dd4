package model

import "testing"

func TestBandForRate(t *testing.T) {
	cases := []struct {
		rate float64
		want MatchingBand
	}{
		{95.2, BandExcellent},
		{90, BandExcellent},
		{89.9, BandGood},
		{70, BandGood},
		{69.9, BandFair},
		{50, BandFair},
		{49.9, BandPoor},
		{0, BandPoor},
	}
	for _, c := range cases {
		if got := BandForRate(c.rate); got != c.want {
			t.Errorf("BandForRate(%v) = %q, want %q", c.rate, got, c.want)
		}
	}
}

func TestContractExternalIDs(t *testing.T) {
	c := Contract{
		JiraEngagementURL: "https://jira.company.com/browse/ENG-2451",
		AthenaURL:         "https://athena.company.com/review/ATH-9821",
	}
	if got := c.JiraID(); got != "ENG-2451" {
		t.Errorf("JiraID() = %q, want ENG-2451", got)
	}
	if got := c.AthenaID(); got != "ATH-9821" {
		t.Errorf("AthenaID() = %q, want ATH-9821", got)
	}

	empty := Contract{}
	if got := empty.JiraID(); got != "" {
		t.Errorf("JiraID() on empty contract = %q, want empty", got)
	}
}

func TestTermStatus(t *testing.T) {
	met := ComplianceTerm{SubPoints: []SubPoint{{Met: true}, {Met: true}}}
	if got := met.Status(); got != TermMet {
		t.Errorf("all subpoints met: status = %q, want %q", got, TermMet)
	}

	partial := ComplianceTerm{SubPoints: []SubPoint{{Met: true}, {Met: false}}}
	if got := partial.Status(); got != TermPartiallyMet {
		t.Errorf("mixed subpoints: status = %q, want %q", got, TermPartiallyMet)
	}

	missing := ComplianceTerm{SubPoints: []SubPoint{{Met: false}, {Met: false}}}
	if got := missing.Status(); got != TermMissing {
		t.Errorf("no subpoints met: status = %q, want %q", got, TermMissing)
	}

	none := ComplianceTerm{}
	if got := none.Status(); got != TermMissing {
		t.Errorf("empty term: status = %q, want %q", got, TermMissing)
	}
}

func TestComputeTermSetMetrics(t *testing.T) {
	terms := []ComplianceTerm{
		{SubPoints: []SubPoint{{Met: true}, {Met: true}}},
		{SubPoints: []SubPoint{{Met: true}, {Met: false}}},
		{SubPoints: []SubPoint{{Met: false}, {Met: false}}},
	}
	m := ComputeTermSetMetrics(terms)

	if m.TotalTerms != 3 || m.MetTerms != 1 || m.PartialTerms != 1 || m.MissingTerms != 1 {
		t.Fatalf("unexpected term counts: %+v", m)
	}
	if m.TotalPoints != 6 || m.MetPoints != 3 {
		t.Fatalf("unexpected point counts: %+v", m)
	}
	if m.TermsPercent != 33 {
		t.Errorf("TermsPercent = %d, want 33", m.TermsPercent)
	}
	if m.PointsPercent != 50 {
		t.Errorf("PointsPercent = %d, want 50", m.PointsPercent)
	}
}

func TestComputeAttestationProgress(t *testing.T) {
	terms := []ComplianceTerm{
		{ID: "1", SubPoints: []SubPoint{{Met: true}, {Met: false}}},
		{ID: "2", SubPoints: []SubPoint{{Met: true}}},
	}

	p := ComputeAttestationProgress(terms, nil)
	if p.TotalPoints != 3 || p.ReviewedCount != 0 || p.CanAttest {
		t.Fatalf("empty attestations: %+v", p)
	}

	atts := []Attestation{
		{TermID: "1", SubPointIndex: 0, Agreed: true},
		{TermID: "1", SubPointIndex: 0, Agreed: false}, // duplicate, counts once
		{TermID: "1", SubPointIndex: 1, Agreed: false, OverriddenValue: OverrideSupported},
	}
	p = ComputeAttestationProgress(terms, atts)
	if p.ReviewedCount != 2 {
		t.Errorf("ReviewedCount = %d, want 2 (duplicates collapse)", p.ReviewedCount)
	}
	if p.CanAttest {
		t.Error("CanAttest should be false while a subpoint is unreviewed")
	}

	atts = append(atts, Attestation{TermID: "2", SubPointIndex: 0, Agreed: true})
	p = ComputeAttestationProgress(terms, atts)
	if p.ReviewedCount != 3 || p.Percentage != 100 || !p.CanAttest {
		t.Fatalf("fully reviewed: %+v", p)
	}
}

func TestFindAttestation(t *testing.T) {
	atts := []Attestation{
		{TermID: "3", SubPointIndex: 1, Agreed: true},
		{TermID: "3", SubPointIndex: 2, Agreed: false},
	}
	if a := FindAttestation(atts, "3", 2); a == nil || a.Agreed {
		t.Fatalf("FindAttestation(3, 2) = %+v, want the override entry", a)
	}
	if a := FindAttestation(atts, "9", 0); a != nil {
		t.Errorf("FindAttestation on unknown term = %+v, want nil", a)
	}
}

func TestSeedDataShape(t *testing.T) {
	contracts := SeedContracts()
	if len(contracts) != 20 {
		t.Fatalf("seed contracts = %d, want 20", len(contracts))
	}
	for _, c := range contracts {
		if c.ID == "" || c.Name == "" || c.Vendor == "" {
			t.Errorf("seed contract missing identity: %+v", c)
		}
		if c.ReviewDurationDays < 2 || c.ReviewDurationDays > 14 {
			t.Errorf("contract %s: duration %d out of range", c.ID, c.ReviewDurationDays)
		}
	}

	terms := SeedComplianceTerms()
	if len(terms) != 40 {
		t.Fatalf("seed terms = %d, want 40", len(terms))
	}
	for _, term := range terms {
		if len(term.SubPoints) == 0 {
			t.Errorf("term %s has no subpoints", term.ID)
		}
	}

	standards := SeedStandards()
	if len(standards) != 8 {
		t.Fatalf("seed standards = %d, want 8", len(standards))
	}
	if n := len(ActiveStandards(standards)); n != 6 {
		t.Errorf("active standards = %d, want 6", n)
	}
	if n := len(DeprecatedStandards(standards)); n != 2 {
		t.Errorf("deprecated standards = %d, want 2", n)
	}

	if n := len(SeedRequestItems()); n != 7 {
		t.Errorf("request items = %d, want 7", n)
	}
}

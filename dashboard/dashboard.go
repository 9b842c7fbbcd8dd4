// Package dashboard renders the contract compliance dashboard as
// server-built HTML pages over a ContractStore and a standards repository.
package dashboard

import (
	"fmt"

	"github.com/complyboard/complyboard/fsrepo"
	"github.com/complyboard/complyboard/store"
	"github.com/complyboard/complyboard/uistate"
)

// Handler wires the dashboard pages to their data sources
type Handler struct {
	store    store.ContractStore
	repo     *fsrepo.StandardsRepository
	registry *uistate.Registry

	chartsEnabled bool
}

// NewHandler creates a dashboard handler. The sidebar callbacks are bound
// into a fresh registry at construction time.
func NewHandler(st store.ContractStore, repo *fsrepo.StandardsRepository) (*Handler, error) {
	if st == nil {
		return nil, fmt.Errorf("dashboard requires a contract store")
	}
	if repo == nil {
		return nil, fmt.Errorf("dashboard requires a standards repository")
	}

	registry := uistate.NewRegistry()
	if err := uistate.RegisterSidebarCallbacks(registry); err != nil {
		return nil, fmt.Errorf("failed to bind sidebar callbacks: %w", err)
	}

	return &Handler{
		store:         st,
		repo:          repo,
		registry:      registry,
		chartsEnabled: true,
	}, nil
}

// SetChartsEnabled toggles chart rendering on the analytics page
func (h *Handler) SetChartsEnabled(enabled bool) {
	h.chartsEnabled = enabled
}

// ChartsEnabled reports whether analytics charts are rendered
func (h *Handler) ChartsEnabled() bool {
	return h.chartsEnabled
}

// Store returns the underlying contract store
func (h *Handler) Store() store.ContractStore {
	return h.store
}

// Repo returns the standards repository
func (h *Handler) Repo() *fsrepo.StandardsRepository {
	return h.repo
}

// Registry returns the UI callback registry
func (h *Handler) Registry() *uistate.Registry {
	return h.registry
}

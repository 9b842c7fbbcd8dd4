// Package fsrepo loads review standard definitions and the compliance term
// checklist from a YAML directory, falling back to built-in defaults when
// no directory is configured.
package fsrepo

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/complyboard/complyboard/log"
	"github.com/complyboard/complyboard/model"
	"gopkg.in/yaml.v3"
)

// StandardsRepository handles loading review standards from the filesystem
type StandardsRepository struct {
	rootPath string

	mu        sync.RWMutex
	standards []model.ReviewStandard
	terms     []model.ComplianceTerm
	items     []model.ReviewRequestItem
	loaded    bool
}

// NewStandardsRepository creates a repository rooted at the given path.
// An empty path means the built-in defaults are served without touching
// the filesystem.
func NewStandardsRepository(rootPath string) (*StandardsRepository, error) {
	if rootPath == "" {
		return &StandardsRepository{}, nil
	}

	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("invalid root path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("root path does not exist: %s", absPath)
	}

	return &StandardsRepository{rootPath: absPath}, nil
}

// Standards returns the review standards, loading them on first use.
func (r *StandardsRepository) Standards() ([]model.ReviewStandard, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.standards, nil
}

// Terms returns the compliance term checklist, loading it on first use.
func (r *StandardsRepository) Terms() ([]model.ComplianceTerm, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.terms, nil
}

// RequestItems returns the review request submenu entries.
func (r *StandardsRepository) RequestItems() ([]model.ReviewRequestItem, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items, nil
}

// Reload discards cached definitions; the next read loads them again.
func (r *StandardsRepository) Reload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = false
}

func (r *StandardsRepository) ensureLoaded() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded {
		return nil
	}

	r.standards = model.SeedStandards()
	r.terms = model.SeedComplianceTerms()
	r.items = model.SeedRequestItems()

	if r.rootPath != "" {
		if err := r.loadFromDisk(); err != nil {
			return err
		}
	}

	r.loaded = true
	return nil
}

// loadFromDisk overrides defaults with whichever definition files exist
// under the root. Missing files keep their built-in values.
func (r *StandardsRepository) loadFromDisk() error {
	if standards, ok, err := loadYAMLFile[[]model.ReviewStandard](r.rootPath, "standards.yaml"); err != nil {
		return err
	} else if ok {
		r.standards = standards
		log.Log.Debugf("Loaded %d review standards from %s", len(standards), r.rootPath)
	}

	if terms, ok, err := loadYAMLFile[[]model.ComplianceTerm](r.rootPath, "terms.yaml"); err != nil {
		return err
	} else if ok {
		r.terms = terms
		log.Log.Debugf("Loaded %d compliance terms from %s", len(terms), r.rootPath)
	}

	if items, ok, err := loadYAMLFile[[]model.ReviewRequestItem](r.rootPath, "request_items.yaml"); err != nil {
		return err
	} else if ok {
		r.items = items
		log.Log.Debugf("Loaded %d request items from %s", len(items), r.rootPath)
	}

	return nil
}

// loadYAMLFile parses one definition file. The second return value reports
// whether the file existed.
func loadYAMLFile[T any](root, name string) (T, bool, error) {
	var out T
	path := filepath.Join(root, name)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return out, false, nil
	}
	if err != nil {
		return out, false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return out, true, nil
}

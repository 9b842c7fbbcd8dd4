package complyboard

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/complyboard/complyboard/config"
	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/fsrepo"
	"github.com/complyboard/complyboard/log"
	"github.com/complyboard/complyboard/model"
	"github.com/complyboard/complyboard/store"
)

const version = "0.3.0"

// Complyboard is the main entry point for the library. It owns the contract
// store, the standards repository, and the dashboard handler.
type Complyboard struct {
	config  *config.Config
	store   store.ContractStore
	repo    *fsrepo.StandardsRepository
	handler *dashboard.Handler

	// llm is nil unless the AI summary feature is configured
	llm *openai.Client
}

// Options allows providing pre-built dependencies instead of constructing
// them from configuration
type Options struct {
	// Store allows providing a custom contract store
	Store store.ContractStore
	// Repository allows providing an existing standards repository
	Repository *fsrepo.StandardsRepository
}

// New creates a Complyboard instance from configuration
func New(cfg *config.Config) (*Complyboard, error) {
	return NewWithOptions(cfg, nil)
}

// NewWithOptions creates a Complyboard instance with custom options
func NewWithOptions(cfg *config.Config, opts *Options) (*Complyboard, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	var st store.ContractStore
	var err error
	if opts != nil && opts.Store != nil {
		st = opts.Store
	} else {
		st, err = newStore(cfg)
		if err != nil {
			return nil, err
		}
	}

	var repo *fsrepo.StandardsRepository
	if opts != nil && opts.Repository != nil {
		repo = opts.Repository
	} else {
		repo, err = fsrepo.NewStandardsRepository(cfg.StandardsPath)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to create standards repository: %w", err)
		}
	}

	handler, err := dashboard.NewHandler(st, repo)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create dashboard handler: %w", err)
	}
	handler.SetChartsEnabled(cfg.Features.ChartsEnabled)

	cb := &Complyboard{
		config:  cfg,
		store:   st,
		repo:    repo,
		handler: handler,
	}

	if cfg.Features.AISummaryEnabled {
		cb.llm = openai.NewClient(cfg.AI.APIKey)
	}

	if cfg.Features.SeedDemoData {
		seeded, err := store.Seed(st, model.SeedContracts())
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		if seeded > 0 {
			log.Log.Infof("Seeded %d demo contracts", seeded)
		}
	}

	return cb, nil
}

func newStore(cfg *config.Config) (store.ContractStore, error) {
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "sqlite":
		st, err := store.NewSQLiteStore(cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return st, nil
	case "mongodb":
		st, err := store.NewMongoDBStore(store.MongoDBStoreConfig{
			URI:      cfg.Store.MongoURI,
			Database: cfg.Store.MongoDatabase,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongodb store: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}

// GetStore returns the contract store
func (cb *Complyboard) GetStore() store.ContractStore {
	return cb.store
}

// GetRepository returns the standards repository
func (cb *Complyboard) GetRepository() *fsrepo.StandardsRepository {
	return cb.repo
}

// GetHandler returns the dashboard handler
func (cb *Complyboard) GetHandler() *dashboard.Handler {
	return cb.handler
}

// Close releases the store connection
func (cb *Complyboard) Close() error {
	return cb.store.Close()
}

// Version returns the library version
func Version() string {
	return version
}

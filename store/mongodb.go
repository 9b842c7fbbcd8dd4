package store

import (
	"context"
	"fmt"
	"time"

	"github.com/complyboard/complyboard/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBStore is a MongoDB implementation of ContractStore
// Contracts and attestations live in separate collections
type MongoDBStore struct {
	client       *mongo.Client
	database     *mongo.Database
	contracts    *mongo.Collection
	attestations *mongo.Collection
}

// MongoDBStoreConfig holds configuration for MongoDBStore
type MongoDBStoreConfig struct {
	URI      string // MongoDB connection URI (e.g., "mongodb://localhost:27017")
	Database string // Database name (default: "complyboard")
}

// DefaultMongoDBStoreConfig returns default configuration
func DefaultMongoDBStoreConfig() MongoDBStoreConfig {
	return MongoDBStoreConfig{
		URI:      "mongodb://localhost:27017",
		Database: "complyboard",
	}
}

// NewMongoDBStore creates a new MongoDB contract store
func NewMongoDBStore(config MongoDBStoreConfig) (*MongoDBStore, error) {
	if config.URI == "" {
		config.URI = "mongodb://localhost:27017"
	}
	if config.Database == "" {
		config.Database = "complyboard"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	database := client.Database(config.Database)
	store := &MongoDBStore{
		client:       client,
		database:     database,
		contracts:    database.Collection("contracts"),
		attestations: database.Collection("attestations"),
	}

	if err := store.initIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return store, nil
}

// initIndexes creates the necessary indexes
func (s *MongoDBStore) initIndexes(ctx context.Context) error {
	_, err := s.contracts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create status index: %w", err)
	}

	_, err = s.contracts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "review_date", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create review_date index: %w", err)
	}

	// One attestation per contract subpoint
	_, err = s.attestations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "contract_id", Value: 1},
			{Key: "term_id", Value: 1},
			{Key: "sub_point_index", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create attestation index: %w", err)
	}

	return nil
}

// Close disconnects from MongoDB
func (s *MongoDBStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// GetContract retrieves a contract by ID
func (s *MongoDBStore) GetContract(contractID string) (*model.Contract, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var contract model.Contract
	err := s.contracts.FindOne(ctx, bson.M{"contract_id": contractID}).Decode(&contract)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("contract not found: %s", contractID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contract: %w", err)
	}
	return &contract, nil
}

// PutContract stores or updates a contract
func (s *MongoDBStore) PutContract(contract *model.Contract) error {
	if contract == nil {
		return fmt.Errorf("contract cannot be nil")
	}
	if contract.ID == "" {
		return fmt.Errorf("contract ID cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = now
	}
	contract.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := s.contracts.ReplaceOne(ctx, bson.M{"contract_id": contract.ID}, contract, opts)
	if err != nil {
		return fmt.Errorf("failed to store contract: %w", err)
	}
	return nil
}

// DeleteContract removes a contract and its attestations
func (s *MongoDBStore) DeleteContract(contractID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.contracts.DeleteOne(ctx, bson.M{"contract_id": contractID}); err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	if _, err := s.attestations.DeleteMany(ctx, bson.M{"contract_id": contractID}); err != nil {
		return fmt.Errorf("failed to delete attestations: %w", err)
	}
	return nil
}

// ListContracts returns all contracts, most recently reviewed first
func (s *MongoDBStore) ListContracts() ([]*model.Contract, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "review_date", Value: -1},
		{Key: "contract_id", Value: 1},
	})
	cursor, err := s.contracts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer cursor.Close(ctx)

	var contracts []*model.Contract
	if err := cursor.All(ctx, &contracts); err != nil {
		return nil, fmt.Errorf("failed to decode contracts: %w", err)
	}
	return contracts, nil
}

// PutAttestation stores a reviewer decision, replacing any earlier decision
// on the same subpoint
func (s *MongoDBStore) PutAttestation(att *model.Attestation) error {
	if att == nil {
		return fmt.Errorf("attestation cannot be nil")
	}
	if att.ContractID == "" || att.TermID == "" {
		return fmt.Errorf("attestation requires contract and term IDs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if att.CreatedAt.IsZero() {
		att.CreatedAt = time.Now()
	}

	filter := bson.M{
		"contract_id":     att.ContractID,
		"term_id":         att.TermID,
		"sub_point_index": att.SubPointIndex,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.attestations.ReplaceOne(ctx, filter, att, opts)
	if err != nil {
		return fmt.Errorf("failed to store attestation: %w", err)
	}
	return nil
}

// ListAttestations returns all attestations for a contract
func (s *MongoDBStore) ListAttestations(contractID string) ([]*model.Attestation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "term_id", Value: 1},
		{Key: "sub_point_index", Value: 1},
	})
	cursor, err := s.attestations.Find(ctx, bson.M{"contract_id": contractID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query attestations: %w", err)
	}
	defer cursor.Close(ctx)

	var atts []*model.Attestation
	if err := cursor.All(ctx, &atts); err != nil {
		return nil, fmt.Errorf("failed to decode attestations: %w", err)
	}
	return atts, nil
}

// DeleteAttestations removes all attestations for a contract
func (s *MongoDBStore) DeleteAttestations(contractID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.attestations.DeleteMany(ctx, bson.M{"contract_id": contractID}); err != nil {
		return fmt.Errorf("failed to delete attestations: %w", err)
	}
	return nil
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/pkg/password"
)

const collectionCredentials = "credentials"

// CredentialStore keeps login identities apart from the user rows. Password
// hashes never leave this collection.
type CredentialStore struct {
	col *mongo.Collection
}

func NewCredentialStore(db *mongo.Database) *CredentialStore {
	return &CredentialStore{col: db.Collection(collectionCredentials)}
}

type credentialDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (s *CredentialStore) CreateIdentity(ctx context.Context, email, plain string) (*domain.Identity, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := credentialDoc{ID: uuid.NewString(), Email: email, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return nil, mapWriteErr("insert credential", err)
	}
	return &domain.Identity{ID: doc.ID, Email: doc.Email}, nil
}

func (s *CredentialStore) GetIdentity(ctx context.Context, id string) (*domain.Identity, error) {
	doc, err := s.find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &domain.Identity{ID: doc.ID, Email: doc.Email}, nil
}

func (s *CredentialStore) UpdateEmail(ctx context.Context, id, email string) error {
	return s.set(ctx, id, bson.M{"email": email})
}

func (s *CredentialStore) UpdatePassword(ctx context.Context, id, plain string) error {
	hash, err := password.Hash(plain)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.set(ctx, id, bson.M{"password_hash": hash})
}

func (s *CredentialStore) DeleteIdentity(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

func (s *CredentialStore) VerifyPassword(ctx context.Context, email, plain string) (*domain.Identity, error) {
	doc, err := s.find(ctx, bson.M{"email": email})
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.Compare(doc.PasswordHash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verify password: %w", err)
	}
	return &domain.Identity{ID: doc.ID, Email: doc.Email}, nil
}

func (s *CredentialStore) find(ctx context.Context, filter bson.M) (*credentialDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc credentialDoc
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return &doc, nil
}

func (s *CredentialStore) set(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	fields["updated_at"] = time.Now().UTC()
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return mapWriteErr("update credential", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

func (s *CredentialStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

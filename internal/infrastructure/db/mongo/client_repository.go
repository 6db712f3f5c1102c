package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gestaoclientes/gestor/internal/core/domain"
	"github.com/gestaoclientes/gestor/internal/core/ports"
)

const collectionClients = "clientes"

type ClientRepository struct {
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{col: db.Collection(collectionClients)}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return mapWriteErr("insert client", err)
	}
	return nil
}

// CreateMany performs an unordered bulk insert. Duplicate key write errors
// are reported by index; any other failure fails the call.
func (r *ClientRepository) CreateMany(ctx context.Context, cs []*domain.Client) ([]int, error) {
	if len(cs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]any, len(cs))
	for i, c := range cs {
		docs[i] = c
	}
	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		return nil, nil
	}

	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil {
		return nil, mapWriteErr("insert clients", err)
	}
	conflicts := make([]int, 0, len(bwe.WriteErrors))
	for _, we := range bwe.WriteErrors {
		if !isDuplicateKeyCode(we.Code) {
			return nil, fmt.Errorf("insert clients: document %d: %s", we.Index, we.Message)
		}
		conflicts = append(conflicts, we.Index)
	}
	sort.Ints(conflicts)
	return conflicts, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &c, nil
}

// List returns clients in the requested lifecycle partition sorted by legal
// name. A missing, null or empty data_saida counts as active.
func (r *ClientRepository) List(ctx context.Context, f ports.ClientFilter) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	switch f.Status {
	case domain.StatusActive:
		filter["data_saida"] = bson.M{"$in": bson.A{nil, ""}}
	case domain.StatusExClient:
		filter["data_saida"] = bson.M{"$nin": bson.A{nil, ""}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "razao_social", Value: 1}}).
		SetCollation(&options.Collation{Locale: "pt", Strength: 2})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Client{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return out, nil
}

// Update replaces the whole document.
func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return mapWriteErr("replace client", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes makes non-empty tax ids unique and backs the default sort.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "cnpj", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"cnpj": bson.M{"$gt": ""}}),
		},
		{Keys: bson.D{{Key: "razao_social", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func isDuplicateKeyCode(code int) bool {
	return code == 11000 || code == 11001 || code == 12582
}

func mapWriteErr(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

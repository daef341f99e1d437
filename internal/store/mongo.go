package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/texasfightcollective/fight-night-api/internal/config"
	"github.com/texasfightcollective/fight-night-api/internal/domain"
)

// Collection names, shared with the original deployment's database.
const (
	collApplications = "fighter_applications"
	collNominations  = "fighter_nominations"
	collEmailList    = "email_list"
)

// Mongo is the production Store backed by a MongoDB database. The driver
// manages its own connection pool; one Mongo value is shared by all requests.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to the configured MongoDB deployment and verifies the
// connection with a ping before returning.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo: no connection URI configured (set MONGO_URI)")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Mongo{client: client, db: client.Database(cfg.Database)}, nil
}

// Close releases the client's connection pool.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping verifies the deployment is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) InsertApplication(ctx context.Context, app domain.FighterApplication) (string, error) {
	app.CreatedAt = time.Now().UTC()
	return m.insert(ctx, collApplications, app)
}

func (m *Mongo) InsertNomination(ctx context.Context, nom domain.FighterNomination) (string, error) {
	nom.CreatedAt = time.Now().UTC()
	return m.insert(ctx, collNominations, nom)
}

func (m *Mongo) InsertSignup(ctx context.Context, s domain.EmailSignup) (string, error) {
	s.CreatedAt = time.Now().UTC()
	return m.insert(ctx, collEmailList, s)
}

func (m *Mongo) insert(ctx context.Context, coll string, doc any) (string, error) {
	res, err := m.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", coll, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected id type %T", coll, res.InsertedID)
	}
	return oid.Hex(), nil
}

// SignupExists reports whether an email is already on the mailing list.
func (m *Mongo) SignupExists(ctx context.Context, email string) (bool, error) {
	err := m.db.Collection(collEmailList).FindOne(ctx, bson.M{"email": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("signup lookup: %w", err)
	}
	return true, nil
}

func (m *Mongo) ListApplications(ctx context.Context) ([]domain.FighterApplication, error) {
	var docs []struct {
		OID                       primitive.ObjectID `bson:"_id"`
		domain.FighterApplication `bson:",inline"`
	}
	if err := m.findNewestFirst(ctx, collApplications, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.FighterApplication, 0, len(docs))
	for _, d := range docs {
		rec := d.FighterApplication
		rec.ID = d.OID.Hex()
		out = append(out, rec)
	}
	return out, nil
}

func (m *Mongo) ListNominations(ctx context.Context) ([]domain.FighterNomination, error) {
	var docs []struct {
		OID                      primitive.ObjectID `bson:"_id"`
		domain.FighterNomination `bson:",inline"`
	}
	if err := m.findNewestFirst(ctx, collNominations, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.FighterNomination, 0, len(docs))
	for _, d := range docs {
		rec := d.FighterNomination
		rec.ID = d.OID.Hex()
		out = append(out, rec)
	}
	return out, nil
}

func (m *Mongo) ListSignups(ctx context.Context) ([]domain.EmailSignup, error) {
	var docs []struct {
		OID                primitive.ObjectID `bson:"_id"`
		domain.EmailSignup `bson:",inline"`
	}
	if err := m.findNewestFirst(ctx, collEmailList, &docs); err != nil {
		return nil, err
	}
	out := make([]domain.EmailSignup, 0, len(docs))
	for _, d := range docs {
		rec := d.EmailSignup
		rec.ID = d.OID.Hex()
		out = append(out, rec)
	}
	return out, nil
}

func (m *Mongo) findNewestFirst(ctx context.Context, coll string, dst any) error {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.db.Collection(coll).Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("list %s: %w", coll, err)
	}
	if err := cur.All(ctx, dst); err != nil {
		return fmt.Errorf("decode %s: %w", coll, err)
	}
	return nil
}

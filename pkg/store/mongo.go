package store

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/graph"
	"github.com/edgeviz/edgeviz/pkg/layout"
)

const (
	defaultDatabase = "edgeviz"
	plotsCollection = "plots"
	connectTimeout  = 10 * time.Second
)

// MongoOptions configures the MongoDB backend.
type MongoOptions struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database holds the plots collection. Defaults to "edgeviz".
	Database string
}

// MongoStore keeps plots in a MongoDB collection so every server
// instance sees the same set.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// plotDoc is the stored document shape. Drawing options carry
// union-typed fields with custom JSON codecs, so they are persisted as
// their canonical JSON rather than as a BSON subdocument.
type plotDoc struct {
	ID        string         `bson:"_id"`
	Name      string         `bson:"name"`
	CreatedAt time.Time      `bson:"created_at"`
	Graph     graph.Document `bson:"graph"`
	Layout    *layout.Layout `bson:"layout,omitempty"`
	Options   []byte         `bson:"options,omitempty"`
}

// NewMongoStore connects to MongoDB and verifies the connection before
// returning. An index on created_at keeps List cheap as plots pile up.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	db := opts.Database
	if db == "" {
		db = defaultDatabase
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb at %s: %w", opts.URI, err)
	}

	coll := client.Database(db).Collection(plotsCollection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("create plots index: %w", err)
	}

	return &MongoStore{client: client, coll: coll}, nil
}

func (s *MongoStore) Create(ctx context.Context, p *Plot) error {
	if err := normalize(p); err != nil {
		return err
	}
	doc, err := encodePlot(p)
	if err != nil {
		return err
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New(errors.ErrCodeInvalidInput, "plot %q already exists", p.ID)
		}
		return fmt.Errorf("insert plot: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Plot, error) {
	var doc plotDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("find plot: %w", err)
	}
	return decodePlot(doc)
}

func (s *MongoStore) List(ctx context.Context) ([]*Plot, error) {
	cur, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list plots: %w", err)
	}
	defer cur.Close(ctx)

	var docs []plotDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read plots: %w", err)
	}

	out := make([]*Plot, 0, len(docs))
	for _, doc := range docs {
		p, err := decodePlot(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	// The index sorts by time only; equal timestamps need the same
	// tie-break the memory backend applies.
	sortNewestFirst(out)
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete plot: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func encodePlot(p *Plot) (plotDoc, error) {
	raw, err := json.Marshal(p.Options)
	if err != nil {
		return plotDoc{}, fmt.Errorf("marshal options: %w", err)
	}
	return plotDoc{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		Graph:     p.Graph,
		Layout:    p.Layout,
		Options:   raw,
	}, nil
}

func decodePlot(doc plotDoc) (*Plot, error) {
	p := &Plot{
		ID:        doc.ID,
		Name:      doc.Name,
		CreatedAt: doc.CreatedAt,
		Graph:     doc.Graph,
		Layout:    doc.Layout,
	}
	if len(doc.Options) > 0 {
		if err := json.Unmarshal(doc.Options, &p.Options); err != nil {
			return nil, fmt.Errorf("parse options for plot %q: %w", doc.ID, err)
		}
	}
	return p, nil
}

var _ Store = (*MongoStore)(nil)

package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	models "io.winapps.thiday/internal/models/word"
)

const ownerDateIndex = "ownerId_createdAt_unique"

type mongoWord struct {
	ID        primitive.ObjectID `bson:"_id"`
	Text      string             `bson:"text"`
	OwnerID   string             `bson:"ownerId"`
	CreatedAt string             `bson:"createdAt"`
}

// Mongo stores words in a MongoDB collection. Ids are ObjectID hex strings.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

// EnsureIndexes creates the unique (ownerId, createdAt) index. It fails if
// the collection already holds duplicates.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName(ownerDateIndex),
	})
	return storageErr("create words index", err)
}

func (s *Mongo) Insert(ctx context.Context, w models.Word) (string, error) {
	doc := mongoWord{
		ID:        primitive.NewObjectID(),
		Text:      w.Text,
		OwnerID:   w.OwnerID,
		CreatedAt: w.CreatedAt,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", storageErr("insert word", ErrDuplicate)
		}
		return "", storageErr("insert word", err)
	}

	return doc.ID.Hex(), nil
}

func (s *Mongo) FindByOwnerAndDate(ctx context.Context, ownerID, date string) (models.Word, bool, error) {
	filter := bson.D{
		{Key: "ownerId", Value: ownerID},
		{Key: "createdAt", Value: date},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	var doc mongoWord
	if err := s.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Word{}, false, nil
		}
		return models.Word{}, false, storageErr("find word", err)
	}

	return models.Word{
		ID:        doc.ID.Hex(),
		Text:      doc.Text,
		OwnerID:   doc.OwnerID,
		CreatedAt: doc.CreatedAt,
	}, true, nil
}

func (s *Mongo) DeleteAll(ctx context.Context) error {
	_, err := s.coll.DeleteMany(ctx, bson.D{})
	return storageErr("delete all words", err)
}

func (s *Mongo) Ping(ctx context.Context) error {
	return storageErr("ping mongo", s.coll.Database().Client().Ping(ctx, readpref.Primary()))
}

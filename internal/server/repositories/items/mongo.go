package items

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/secondchance/internal/common"
	"github.com/dmitrijs2005/secondchance/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// itemDocument keeps the item id in its own "id" field; _id is left to the driver.
type itemDocument struct {
	ID          string     `bson:"id"`
	Name        string     `bson:"name"`
	Category    string     `bson:"category"`
	Condition   string     `bson:"condition"`
	PostedBy    string     `bson:"posted_by"`
	Zipcode     string     `bson:"zipcode"`
	Description string     `bson:"description"`
	Image       string     `bson:"image"`
	DateAdded   int64      `bson:"date_added"`
	AgeDays     float64    `bson:"age_days"`
	AgeYears    float64    `bson:"age_years"`
	UpdatedAt   *time.Time `bson:"updatedAt,omitempty"`
}

func fromModel(i *models.Item) itemDocument {
	return itemDocument{
		ID:          i.ID,
		Name:        i.Name,
		Category:    i.Category,
		Condition:   i.Condition,
		PostedBy:    i.PostedBy,
		Zipcode:     i.Zipcode,
		Description: i.Description,
		Image:       i.Image,
		DateAdded:   i.DateAdded,
		AgeDays:     i.AgeDays,
		AgeYears:    i.AgeYears,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (d *itemDocument) toModel() *models.Item {
	return &models.Item{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Condition:   d.Condition,
		PostedBy:    d.PostedBy,
		Zipcode:     d.Zipcode,
		Description: d.Description,
		Image:       d.Image,
		DateAdded:   d.DateAdded,
		AgeDays:     d.AgeDays,
		AgeYears:    d.AgeYears,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MongoRepository implements Repository over a configurable collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database, collection string) *MongoRepository {
	return &MongoRepository{coll: db.Collection(collection)}
}

// EnsureIndexes creates a unique index on the item id.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("id_unique"),
	})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_added", Value: 1}, {Key: "id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	result := make([]*models.Item, 0)
	for cur.Next(ctx) {
		var doc itemDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Item, error) {
	var doc itemDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&doc); err != nil {
		return nil, translateMongoError(err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if _, err := r.coll.InsertOne(ctx, fromModel(item)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, c models.ItemChanges) (*models.Item, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "category", Value: c.Category},
		{Key: "condition", Value: c.Condition},
		{Key: "description", Value: c.Description},
		{Key: "age_days", Value: c.AgeDays},
		{Key: "age_years", Value: c.AgeYears},
		{Key: "updatedAt", Value: c.UpdatedAt},
	}}}

	var doc itemDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "id", Value: id}},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateMongoError(err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func translateMongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

package repositories

import (
	"context"
	"errors"

	"github.com/anonto42/wanderlog/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountryRepository gives read access to the reference country catalog.
type CountryRepository interface {
	GetCountryByName(ctx context.Context, name string) (*models.Country, error)
	GetCountryByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error)
	GetCountriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Country, error)
	GetAllCountries(ctx context.Context) ([]models.Country, error)
}

type MongoCountryRepository struct {
	collection *mongo.Collection
}

func NewMongoCountryRepository(db *mongo.Database) *MongoCountryRepository {
	return &MongoCountryRepository{collection: db.Collection("countries")}
}

// GetCountryByName matches the name exactly; no case folding.
func (r *MongoCountryRepository) GetCountryByName(ctx context.Context, name string) (*models.Country, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *MongoCountryRepository) GetCountryByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoCountryRepository) GetCountriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Country, error) {
	if len(ids) == 0 {
		return []models.Country{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoCountryRepository) GetAllCountries(ctx context.Context) ([]models.Country, error) {
	return r.find(ctx, bson.D{})
}

// EnsureIndexes makes name unique, which is what lookups key on.
func (r *MongoCountryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// UpsertCountries loads catalog records keyed by name. Existing records keep
// their ids so posts referencing them stay valid. It returns the number of
// inserted and updated records.
func (r *MongoCountryRepository) UpsertCountries(ctx context.Context, countries []models.Country) (inserted, updated int64, err error) {
	if len(countries) == 0 {
		return 0, 0, nil
	}

	writes := make([]mongo.WriteModel, 0, len(countries))
	for _, c := range countries {
		c.ID = primitive.NilObjectID
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"name": c.Name}).
			SetUpdate(bson.M{"$set": c}).
			SetUpsert(true))
	}

	res, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, 0, err
	}
	return res.UpsertedCount, res.ModifiedCount, nil
}

func (r *MongoCountryRepository) findOne(ctx context.Context, filter any) (*models.Country, error) {
	var country models.Country
	if err := r.collection.FindOne(ctx, filter).Decode(&country); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &country, nil
}

func (r *MongoCountryRepository) find(ctx context.Context, filter any) ([]models.Country, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	countries := []models.Country{}
	if err = cursor.All(ctx, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

package availability

import (
	"agendly-service/internal/app/contracts"
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilities),
	}
}

func (r *AvailabilityMongoRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.Availability, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.Availability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

// ReplaceForProvider swaps the provider's whole weekly set in one pass. The
// editor always posts all seven days, so a delete-then-insert keeps the
// stored set canonical without per-day upsert bookkeeping.
func (r *AvailabilityMongoRepository) ReplaceForProvider(ctx context.Context, providerID string, records []models.Availability) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}

	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for i := range records {
		docs = append(docs, records[i])
	}
	_, err = r.Collection.InsertMany(ctx, docs)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

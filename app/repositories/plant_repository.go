package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/internal/store"
	"github.com/shashiranjanraj/plantnet/pkg/cache"
	"github.com/shashiranjanraj/plantnet/pkg/metrics"
)

const (
	// listLimit caps the public listing; there is no pagination beyond it.
	listLimit = 20

	listCacheKey  = "plants:list"
	itemCacheKey  = "plants:id:"
	plantCacheTTL = 30 * time.Second
)

// PlantRepository handles the plants collection, with a short-lived Redis
// cache in front of the read paths. Cached entries are previously returned
// responses, so the listing keeps its store-native (unspecified) order.
type PlantRepository struct{}

func NewPlantRepository() *PlantRepository {
	return &PlantRepository{}
}

// List returns up to 20 plants in whatever order the store yields them.
func (r *PlantRepository) List(ctx context.Context) ([]models.Plant, error) {
	var plants []models.Plant
	if cache.Get(listCacheKey, &plants) {
		metrics.CacheHits.WithLabelValues("list").Inc()
		return plants, nil
	}
	metrics.CacheMisses.WithLabelValues("list").Inc()

	defer metrics.ObserveMongoOp(store.Plants, "find", time.Now())

	cur, err := store.Collection(store.Plants).Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("plants: find: %w", err)
	}
	defer cur.Close(ctx)

	plants = []models.Plant{}
	if err := cur.All(ctx, &plants); err != nil {
		return nil, fmt.Errorf("plants: decode: %w", err)
	}

	_ = cache.Set(listCacheKey, plants, plantCacheTTL)
	return plants, nil
}

// FindByID returns one plant, or ErrNotFound.
func (r *PlantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Plant, error) {
	key := itemCacheKey + id.Hex()

	var plant models.Plant
	if cache.Get(key, &plant) {
		metrics.CacheHits.WithLabelValues("item").Inc()
		return plant, nil
	}
	metrics.CacheMisses.WithLabelValues("item").Inc()

	defer metrics.ObserveMongoOp(store.Plants, "find", time.Now())

	err := store.Collection(store.Plants).FindOne(ctx, bson.M{"_id": id}).Decode(&plant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Plant{}, ErrNotFound
	}
	if err != nil {
		return models.Plant{}, fmt.Errorf("plants: find by id: %w", err)
	}

	_ = cache.Set(key, plant, plantCacheTTL)
	return plant, nil
}

// FindByIDs batch-fetches the given plants. Missing ids are simply absent
// from the result; the history join treats that as a dropped row.
func (r *PlantRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Plant, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	defer metrics.ObserveMongoOp(store.Plants, "find", time.Now())

	cur, err := store.Collection(store.Plants).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("plants: find by ids: %w", err)
	}
	defer cur.Close(ctx)

	var plants []models.Plant
	if err := cur.All(ctx, &plants); err != nil {
		return nil, fmt.Errorf("plants: decode: %w", err)
	}
	return plants, nil
}

// Insert stores a new plant record as given.
func (r *PlantRepository) Insert(ctx context.Context, plant models.Plant) (models.InsertAck, error) {
	defer metrics.ObserveMongoOp(store.Plants, "insert", time.Now())

	res, err := store.Collection(store.Plants).InsertOne(ctx, plant)
	if err != nil {
		return models.InsertAck{}, fmt.Errorf("plants: insert: %w", err)
	}

	_ = cache.Del(listCacheKey)

	ack := models.InsertAck{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedID = oid.Hex()
	}
	return ack, nil
}

// IncQuantity applies quantity += delta as a single-document atomic
// increment. There is no floor: a delta larger than the remaining stock
// drives the quantity negative, and callers own guarding against that.
func (r *PlantRepository) IncQuantity(ctx context.Context, id primitive.ObjectID, delta int) (models.UpdateAck, error) {
	defer metrics.ObserveMongoOp(store.Plants, "update", time.Now())

	res, err := store.Collection(store.Plants).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"quantity": delta}},
	)
	if err != nil {
		return models.UpdateAck{}, fmt.Errorf("plants: inc quantity: %w", err)
	}

	_ = cache.Del(listCacheKey, itemCacheKey+id.Hex())
	metrics.QuantityAdjustments.Inc()

	return models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/internal/store"
	"github.com/shashiranjanraj/plantnet/pkg/metrics"
)

// OrderRepository handles the orders collection.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Insert stores the order document as given. No validation beyond bson
// encoding; the matching inventory decrement is a separate, unsynchronized
// write issued by the client.
func (r *OrderRepository) Insert(ctx context.Context, order models.Order) (models.InsertAck, error) {
	defer metrics.ObserveMongoOp(store.Orders, "insert", time.Now())

	res, err := store.Collection(store.Orders).InsertOne(ctx, order)
	if err != nil {
		return models.InsertAck{}, fmt.Errorf("orders: insert: %w", err)
	}

	ack := models.InsertAck{Acknowledged: true}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedID = oid.Hex()
	}
	return ack, nil
}

// FindByID returns one order, or ErrNotFound.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	defer metrics.ObserveMongoOp(store.Orders, "find", time.Now())

	var order models.Order
	err := store.Collection(store.Orders).FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("orders: find by id: %w", err)
	}
	return order, nil
}

// FindByCustomer returns every order placed under the given email.
func (r *OrderRepository) FindByCustomer(ctx context.Context, email string) ([]models.Order, error) {
	defer metrics.ObserveMongoOp(store.Orders, "find", time.Now())

	cur, err := store.Collection(store.Orders).Find(ctx, bson.M{"customer.email": email})
	if err != nil {
		return nil, fmt.Errorf("orders: find by customer: %w", err)
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}
	return orders, nil
}

// Delete removes the order by id and returns the deletion acknowledgment.
func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteAck, error) {
	defer metrics.ObserveMongoOp(store.Orders, "delete", time.Now())

	res, err := store.Collection(store.Orders).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteAck{}, fmt.Errorf("orders: delete: %w", err)
	}
	return models.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

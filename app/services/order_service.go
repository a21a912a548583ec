// Package services holds the business rules between the HTTP handlers and
// the repositories.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/app/repositories"
	"github.com/shashiranjanraj/plantnet/pkg/event"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/metrics"
)

var (
	// ErrOrderNotFound reports a cancel against an order id that matches
	// nothing.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderDelivered reports a cancel against a delivered order.
	// Delivered orders are immutable.
	ErrOrderDelivered = errors.New("order already delivered")
)

// OrderLedger is the slice of the order repository the service needs.
type OrderLedger interface {
	Insert(ctx context.Context, order models.Order) (models.InsertAck, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	FindByCustomer(ctx context.Context, email string) ([]models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteAck, error)
}

// PlantCatalog is the slice of the plant repository the history join needs.
type PlantCatalog interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Plant, error)
}

// OrderService owns checkout, cancellation gating, and the customer history
// join.
type OrderService struct {
	ledger  OrderLedger
	catalog PlantCatalog
}

func NewOrderService(ledger OrderLedger, catalog PlantCatalog) *OrderService {
	return &OrderService{ledger: ledger, catalog: catalog}
}

// Checkout stores the order as given and fires the order.created event.
// The inventory decrement is a separate request issued by the client; the
// two writes are not atomic and there is no compensation if one fails.
func (s *OrderService) Checkout(ctx context.Context, order models.Order) (models.InsertAck, error) {
	ack, err := s.ledger.Insert(ctx, order)
	if err != nil {
		return models.InsertAck{}, err
	}

	metrics.OrdersCreated.Inc()
	event.Fire(event.OrderCreated, order)
	return ack, nil
}

// Cancel deletes an order unless it was already delivered.
// A missing order returns ErrOrderNotFound rather than faulting.
func (s *OrderService) Cancel(ctx context.Context, id primitive.ObjectID) (models.DeleteAck, error) {
	order, err := s.ledger.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.DeleteAck{}, ErrOrderNotFound
	}
	if err != nil {
		return models.DeleteAck{}, err
	}

	if order.Status == models.StatusDelivered {
		return models.DeleteAck{}, ErrOrderDelivered
	}

	ack, err := s.ledger.Delete(ctx, id)
	if err != nil {
		return models.DeleteAck{}, err
	}

	metrics.OrdersCancelled.Inc()
	event.Fire(event.OrderCancelled, order)
	return ack, nil
}

// HistoryForCustomer returns the customer's orders enriched with the
// referenced plant's name, image and category. The join is inner: an order
// whose plantId fails ObjectID coercion or resolves to no plant is dropped
// from the result, not reported as an error.
func (s *OrderService) HistoryForCustomer(ctx context.Context, email string) ([]models.OrderHistory, error) {
	orders, err := s.ledger.FindByCustomer(ctx, email)
	if err != nil {
		return nil, err
	}

	// Coerce the text plant references, collecting the resolvable ones.
	ids := make([]primitive.ObjectID, 0, len(orders))
	for _, o := range orders {
		id, err := primitive.ObjectIDFromHex(o.PlantID)
		if err != nil {
			logger.WithCtx(ctx).Debug("history: unresolvable plant reference",
				"order_id", o.ID.Hex(), "plant_id", o.PlantID)
			continue
		}
		ids = append(ids, id)
	}

	plants, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("history: fetch plants: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.Plant, len(plants))
	for _, p := range plants {
		byID[p.ID] = p
	}

	rows := []models.OrderHistory{}
	for _, o := range orders {
		// Match on the coerced ObjectID, not the stored text: hex compares
		// case-sensitively, ObjectIDs do not.
		id, err := primitive.ObjectIDFromHex(o.PlantID)
		if err != nil {
			continue
		}
		plant, ok := byID[id]
		if !ok {
			// Dangling reference: the plant was removed or never existed.
			continue
		}
		rows = append(rows, models.OrderHistory{
			Order:    o,
			Name:     plant.Name,
			Image:    plant.Image,
			Category: plant.Category,
		})
	}
	return rows, nil
}

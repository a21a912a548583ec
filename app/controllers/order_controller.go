package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/app/services"
	"github.com/shashiranjanraj/plantnet/pkg/bind"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/response"
)

// OrderFlow is the slice of the order service the controller needs.
type OrderFlow interface {
	Checkout(ctx context.Context, order models.Order) (models.InsertAck, error)
	Cancel(ctx context.Context, id primitive.ObjectID) (models.DeleteAck, error)
	HistoryForCustomer(ctx context.Context, email string) ([]models.OrderHistory, error)
}

type OrderController struct {
	orders OrderFlow
}

func NewOrderController(orders OrderFlow) *OrderController {
	return &OrderController{orders: orders}
}

// Store handles POST /order: persist the checkout as given. The caller is
// expected to follow up with the quantity adjustment; the two writes are
// independent.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := bind.JSON(r, &order); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := c.orders.Checkout(r.Context(), order)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order insert failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, ack)
}

// Destroy handles DELETE /order/{id}. Delivered orders are immutable and
// answer 409; a missing order answers 404.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid order id")
		return
	}

	ack, err := c.orders.Cancel(r.Context(), id)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		response.NotFound(w, "order not found")
		return
	case errors.Is(err, services.ErrOrderDelivered):
		response.Conflict(w, "This order is already delivered")
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("order delete failed", "id", id.Hex(), "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, ack)
}

// History handles GET /customer-orders/{email}: enriched order rows for the
// customer, dangling plant references silently excluded.
func (c *OrderController) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	rows, err := c.orders.HistoryForCustomer(r.Context(), email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order history failed", "email", email, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, rows)
}

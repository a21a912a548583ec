package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/plantnet/app/controllers"
	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/app/services"
	"github.com/shashiranjanraj/plantnet/pkg/router"
	"github.com/shashiranjanraj/plantnet/pkg/testkit"
)

// fakeOrderFlow scripts the service behaviour per test.
type fakeOrderFlow struct {
	checkoutAck models.InsertAck
	cancelAck   models.DeleteAck
	cancelErr   error
	history     []models.OrderHistory

	gotOrder    *models.Order
	gotCancelID primitive.ObjectID
	gotEmail    string
}

func (f *fakeOrderFlow) Checkout(_ context.Context, o models.Order) (models.InsertAck, error) {
	f.gotOrder = &o
	return f.checkoutAck, nil
}

func (f *fakeOrderFlow) Cancel(_ context.Context, id primitive.ObjectID) (models.DeleteAck, error) {
	f.gotCancelID = id
	return f.cancelAck, f.cancelErr
}

func (f *fakeOrderFlow) HistoryForCustomer(_ context.Context, email string) ([]models.OrderHistory, error) {
	f.gotEmail = email
	return f.history, nil
}

func orderRouter(flow controllers.OrderFlow) http.Handler {
	c := controllers.NewOrderController(flow)
	r := router.New()
	r.Post("/order", "orders.store", c.Store)
	r.Delete("/order/{id}", "orders.destroy", c.Destroy)
	r.Get("/customer-orders/{email}", "orders.history", c.History)
	return r.Handler()
}

func TestStoreOrder(t *testing.T) {
	flow := &fakeOrderFlow{checkoutAck: models.InsertAck{Acknowledged: true, InsertedID: "abc"}}
	h := orderRouter(flow)

	body := `{"customer":{"email":"a@x.com"},"plantId":"5f1f","quantity":3,"status":"pending"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONBody(t, []byte(`{"acknowledged":true,"insertedId":"abc"}`), rec.Body.Bytes())

	require.NotNil(t, flow.gotOrder)
	assert.Equal(t, "a@x.com", flow.gotOrder.Customer.Email)
	assert.Equal(t, 3, flow.gotOrder.Quantity)
}

func TestStoreOrderRejectsMalformedBody(t *testing.T) {
	h := orderRouter(&fakeOrderFlow{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader("{nope"))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDestroyDeliveredOrderConflicts(t *testing.T) {
	flow := &fakeOrderFlow{cancelErr: services.ErrOrderDelivered}
	h := orderRouter(flow)

	id := primitive.NewObjectID()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/order/"+id.Hex(), nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "This order is already delivered")
	assert.Equal(t, id, flow.gotCancelID)
}

func TestDestroyMissingOrderNotFound(t *testing.T) {
	flow := &fakeOrderFlow{cancelErr: services.ErrOrderNotFound}
	h := orderRouter(flow)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/order/"+primitive.NewObjectID().Hex(), nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDestroyInvalidIDRejected(t *testing.T) {
	h := orderRouter(&fakeOrderFlow{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/order/not-an-id", nil)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDestroyPendingOrder(t *testing.T) {
	flow := &fakeOrderFlow{cancelAck: models.DeleteAck{Acknowledged: true, DeletedCount: 1}}
	h := orderRouter(flow)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/order/"+primitive.NewObjectID().Hex(), nil)
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	testkit.AssertJSONBody(t, []byte(`{"acknowledged":true,"deletedCount":1}`), rec.Body.Bytes())
}

func TestHistoryPassesEmailThrough(t *testing.T) {
	flow := &fakeOrderFlow{history: []models.OrderHistory{}}
	h := orderRouter(flow)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/customer-orders/a@x.com", nil)
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", flow.gotEmail)
	assert.Equal(t, "[]\n", rec.Body.String())
}

package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/app/repositories"
	"github.com/shashiranjanraj/plantnet/pkg/bind"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/response"
)

// Catalog is the slice of the plant repository the controller needs.
type Catalog interface {
	List(ctx context.Context) ([]models.Plant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Plant, error)
	Insert(ctx context.Context, plant models.Plant) (models.InsertAck, error)
	IncQuantity(ctx context.Context, id primitive.ObjectID, delta int) (models.UpdateAck, error)
}

type PlantController struct {
	catalog Catalog
}

func NewPlantController(catalog Catalog) *PlantController {
	return &PlantController{catalog: catalog}
}

// Index handles GET /plants: up to 20 listings, store-native order.
func (c *PlantController) Index(w http.ResponseWriter, r *http.Request) {
	plants, err := c.catalog.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("plant listing failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, plants)
}

// Show handles GET /plant/{id}.
func (c *PlantController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid plant id")
		return
	}

	plant, err := c.catalog.FindByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "plant not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("plant lookup failed", "id", id.Hex(), "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, plant)
}

// Store handles POST /plants: persist the listing as given.
func (c *PlantController) Store(w http.ResponseWriter, r *http.Request) {
	var plant models.Plant
	if err := bind.JSON(r, &plant); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := c.catalog.Insert(r.Context(), plant)
	if err != nil {
		logger.WithCtx(r.Context()).Error("plant insert failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, ack)
}

// AdjustQuantity handles PATCH /plant/quantity/{id}: apply the purchase
// decrement as an atomic increment of -quantityToUpdate. The status field is
// accepted from the client but plays no part in the update. No stock floor
// is enforced.
func (c *PlantController) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid plant id")
		return
	}

	var body struct {
		QuantityToUpdate int    `json:"quantityToUpdate"`
		Status           string `json:"status"`
	}
	if err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ack, err := c.catalog.IncQuantity(r.Context(), id, -body.QuantityToUpdate)
	if err != nil {
		logger.WithCtx(r.Context()).Error("quantity adjustment failed", "id", id.Hex(), "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, ack)
}

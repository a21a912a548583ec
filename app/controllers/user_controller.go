package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/pkg/bind"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/response"
)

// UserStore is the slice of the user repository the controller needs.
type UserStore interface {
	UpsertByEmail(ctx context.Context, email string, profile models.User) (models.User, error)
}

type UserController struct {
	users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{users: users}
}

// Upsert handles POST /users/{email}: register the profile on first sight,
// or return the stored record untouched when the email is already known.
func (c *UserController) Upsert(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var profile models.User
	if err := bind.JSON(r, &profile); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := c.users.UpsertByEmail(r.Context(), email, profile)
	if err != nil {
		logger.WithCtx(r.Context()).Error("user upsert failed", "email", email, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.Success(w, user)
}

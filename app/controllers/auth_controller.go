package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/plantnet/pkg/auth"
	"github.com/shashiranjanraj/plantnet/pkg/bind"
	"github.com/shashiranjanraj/plantnet/pkg/logger"
	"github.com/shashiranjanraj/plantnet/pkg/response"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken handles POST /jwt: mint a session token for the posted email
// and set it as the session cookie. The email is taken at face value;
// everywhere else in the API, identity is whatever the cookie says.
func (c *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := auth.GenerateToken(body.Email)
	if err != nil {
		logger.WithCtx(r.Context()).Error("token issue failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	auth.SetSessionCookie(w, token)
	response.Success(w, map[string]bool{"success": true})
}

// Logout handles GET /logout: clear the session cookie. Previously issued
// tokens stay valid until expiry; there is no server-side revocation.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	response.Success(w, map[string]bool{"success": true})
}

// Package controllers holds the HTTP handlers. Controllers stay thin:
// bind, validate, call a service or repository, write the envelope.
package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/laziz/app/services"
	"github.com/shashiranjanraj/laziz/pkg/bind"
	"github.com/shashiranjanraj/laziz/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{
		service: services.NewAuthService(),
	}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges the admin credentials for a 24-hour bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := c.service.Login(body.Email, body.Password)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	response.Success(w, map[string]string{"token": token})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/services"
)

type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterPayload struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthHandler struct {
	render    *render.Render
	authSvc   *services.AuthService
	validator *validator.Validate
}

func NewAuthHandler(rnd *render.Render, authSvc *services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{render: rnd, authSvc: authSvc, validator: validate}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	if err := h.validator.Struct(&payload); err != nil {
		WriteError(h.render, w, ValidationError(err))
		return
	}

	token, err := h.authSvc.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		WriteError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}
	if err := h.validator.Struct(&payload); err != nil {
		WriteError(h.render, w, ValidationError(err))
		return
	}

	if err := h.authSvc.Register(r.Context(), payload.Username, payload.Email, payload.Password); err != nil {
		WriteError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{
		"message": "User registered successfully",
	})
}

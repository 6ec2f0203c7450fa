package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/helpers"
)

// WriteError funnels every handler failure through the shared translator
// and renders the stable {"error": ...} body.
func WriteError(rnd *render.Render, w http.ResponseWriter, err error) {
	httpErr := helpers.ToHTTPError(err)
	_ = rnd.JSON(w, httpErr.Status, map[string]string{"error": httpErr.Message})
}

// ValidationError turns the first failed rule into a 400 the client can act on.
func ValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return helpers.NewHTTPError(http.StatusBadRequest, "missing or invalid field: "+errs[0].Field())
	}
	return helpers.NewHTTPError(http.StatusBadRequest, "invalid request body")
}

// ABOUTME: Maps core errors onto huma HTTP errors
// ABOUTME: Listings never fail, so only share and confirmation requests reach this

package handlers

import (
	"opportunities-portal-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

func toHumaError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case errors.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("Internal server error", err)
	}
}

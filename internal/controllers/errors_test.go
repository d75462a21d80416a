package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Rafaelaligui187/Memoria-sub003/internal/apperrors"
	"github.com/Rafaelaligui187/Memoria-sub003/internal/collections"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.ErrNotFound, fiber.StatusNotFound},
		{"invalid state", apperrors.ErrInvalidState, fiber.StatusBadRequest},
		{"validation", apperrors.NewValidation("schoolYearId", "userId"), fiber.StatusBadRequest},
		{"unknown user type", &collections.UnknownUserTypeError{UserType: "visitor"}, fiber.StatusInternalServerError},
		{"anything else", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return fail(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

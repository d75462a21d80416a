package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestDeleteProfileHandlerValidatesQueryIDs(t *testing.T) {
	app := fiber.New()
	app.Delete("/api/profiles", DeleteProfileHandler())

	cases := []struct {
		name   string
		target string
	}{
		{"missing profileId", "/api/profiles"},
		{"malformed profileId", "/api/profiles?profileId=zzz"},
		{"malformed schoolYearId", "/api/profiles?profileId=" + bson.NewObjectID().Hex() + "&schoolYearId=zzz"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("DELETE", tc.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

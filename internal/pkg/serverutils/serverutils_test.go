package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	SessionId string `validate:"required,uuid"`
	Message   string `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	valid := sampleRequest{
		SessionId: "7b7f54a0-3d1c-4a05-b1a3-5c9a2f1d2e3f",
		Message:   "hello",
	}
	assert.NoError(t, ValidateRequest(valid))

	invalid := sampleRequest{SessionId: "not-a-uuid"}
	err := ValidateRequest(invalid)
	assert.Error(t, err)

	var fiberErr *fiber.Error
	assert.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "SessionId")
	assert.Contains(t, fiberErr.Message, "Message")
}

func TestErrorHandlerMiddlewareEnvelope(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nil))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return assert.AnError
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(SuccessResponse("Success", fiber.Map{"value": 1}))
	})

	res, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	var envelope Response[any]
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, fiber.StatusNotFound, envelope.Code)
	assert.Equal(t, "Session not found", envelope.Message)

	res, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)

	res, err = app.Test(httptest.NewRequest("GET", "/ok", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestSuccessResponseShape(t *testing.T) {
	resp := SuccessResponse("Success get data", []string{"a"})
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Success get data", resp.Message)
	assert.Equal(t, []string{"a"}, resp.Data)

	raw, err := json.Marshal(ErrorResponse(404, "not found"))
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "data")
}

// Package response shapes every JSON body the API returns. Handlers never
// build fiber.Map payloads by hand; the desktop client depends on a single
// envelope with success/message/data on the happy path and error otherwise.
package response

import "github.com/gofiber/fiber/v2"

// Envelope is the wire format for all API responses.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func send(c *fiber.Ctx, code int, env Envelope) error {
	return c.Status(code).JSON(env)
}

// Success replies 200 with the record(s) in data.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return send(c, fiber.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Created replies 201 with the stored record in data.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return send(c, fiber.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Error replies with the given status and a failure envelope.
func Error(c *fiber.Ctx, code int, message string) error {
	return send(c, code, Envelope{Error: message})
}

// BadRequest rejects malformed or invalid record input.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized rejects requests without a valid access token.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden rejects authenticated requests that lack the required role.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound reports a violation or user that does not exist.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict reports a uniqueness clash, e.g. a taken username.
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError reports an unexpected storage or runtime failure.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

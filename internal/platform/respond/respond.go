package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Mutation is the envelope returned by every create/update/delete endpoint.
// The message is the human-readable confirmation that clients surface in
// notifications; errors travel through echo.HTTPError whose body carries a
// "message" field with the same contract.
type Mutation struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Created writes a 201 with a confirmation message and the created record.
func Created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Mutation{Message: message, Data: data})
}

// OK writes a 200 with a confirmation message and the affected record.
func OK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Mutation{Message: message, Data: data})
}

// Deleted writes a 200 with a confirmation message and no data.
func Deleted(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Mutation{Message: message})
}

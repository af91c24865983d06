package httpserver

import "github.com/labstack/echo/v4"

// Response bodies mirror the wire contract exactly: small fixed records on
// success, {"error": message} on failure.

type ErrorResponse struct {
	Error string `json:"error"`
}

type InsertedResponse struct {
	InsertedID string `json:"insertedId"`
}

type ModifiedResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeletedResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Error: message})
}

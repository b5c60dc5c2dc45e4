package http_util

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo"
)

type JSONMessage struct {
	Message string `json:"message"`
}

type HTTPResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func Encode[T any](c echo.Context, status int, v T) error {
	return c.JSON(status, v)
}

func Decode[T any](c echo.Context) (T, error) {
	var v T
	if err := c.Bind(&v); err != nil {
		return v, err
	}
	return v, nil
}

func DecodeBody[T any](body []byte, v T) (T, error) {
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// Message writes a plain {"message": ...} body, the shape used for every
// error and acknowledgement response.
func Message(c echo.Context, status int, msg string) error {
	return c.JSON(status, JSONMessage{Message: msg})
}

// BadRequest is sugar for the most common rejection.
func BadRequest(c echo.Context, msg string) error {
	return Message(c, http.StatusBadRequest, msg)
}

package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// OpError is a failed request tagged with the operation that produced it.
// ErrorHandler logs it and renders Message to the client.
type OpError struct {
	Op      string
	Code    int
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Op + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Message
}

func (e *OpError) Unwrap() error { return e.Err }

func NotFound(op, msg string) error {
	return &OpError{Op: op, Code: fiber.StatusNotFound, Message: msg}
}

func BadRequest(op string, err error) error {
	return &OpError{Op: op, Code: fiber.StatusBadRequest, Message: err.Error(), Err: err}
}

func Unauthorized(op, msg string) error {
	return &OpError{Op: op, Code: fiber.StatusUnauthorized, Message: msg}
}

// QueryFailure reports a store error. msg goes to the client, err only to the log.
func QueryFailure(op, msg string, err error) error {
	return &OpError{Op: op, Code: fiber.StatusInternalServerError, Message: msg, Err: err}
}

// ErrorHandler renders every failure as {"Status": "Error", "Error": msg}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var oe *OpError
	var fe *fiber.Error
	switch {
	case errors.As(err, &oe):
		code, msg = oe.Code, oe.Message
		log.Printf("[%s] %d %v", oe.Op, code, err)
	case errors.As(err, &fe):
		code, msg = fe.Code, fe.Message
	default:
		log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{"Status": "Error", "Error": msg})
}

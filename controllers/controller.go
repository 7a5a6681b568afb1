package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Controller serves every record endpoint from one shared store.
type Controller struct {
	db      condb.Store
	timeout time.Duration
}

func New(db condb.Store, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Controller{db: db, timeout: timeout}
}

func (h *Controller) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.timeout)
}

func (h *Controller) coll(name string) condb.Collection {
	return h.db.Collection(name)
}

func idParam(c *fiber.Ctx, op, name string) (primitive.ObjectID, error) {
	id, err := utils.ParseID(c.Params(name))
	if err != nil {
		return id, middleware.BadRequest(op, err)
	}
	return id, nil
}

func (h *Controller) Welcome(c *fiber.Ctx) error {
	return c.SendString("Welcome to Factory Manage Server!")
}

func (h *Controller) Health(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return &middleware.OpError{Op: "health", Code: fiber.StatusServiceUnavailable, Message: "store unavailable", Err: err}
	}
	return c.SendString("OK")
}

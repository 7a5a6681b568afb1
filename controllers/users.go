package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Login checks that a user with exactly this email and password exists.
// Passwords are stored in plain text and no token is issued.
func (h *Controller) Login(c *fiber.Ctx) error {
	const op = "login"

	var in models.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return middleware.BadRequest(op, err)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	var user models.User
	err := h.coll(condb.Users).FindOne(ctx, bson.M{"email": in.Email, "password": in.Password}, &user)
	if errors.Is(err, condb.ErrNotFound) {
		return middleware.Unauthorized(op, "Wrong Email or Password")
	}
	if err != nil {
		return middleware.QueryFailure(op, "Error in Running Query", err)
	}

	return c.JSON(fiber.Map{"Status": "Success"})
}

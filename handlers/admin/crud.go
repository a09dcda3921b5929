package handlers

import (
	"context"

	"tiklabakim.com/middlewares"
	"tiklabakim.com/pkg/reqparams"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/services"

	"github.com/gofiber/fiber/v2"
)

// Yönetim uç noktaları aynı oluştur/güncelle/sil akışını paylaşır:
// gövdeyi oku, oturumdaki yöneticiyi işlemi yapan olarak geçir, sonucu zarfla döndür.

func createWith[I any, R any](c *fiber.Ctx, create func(ctx context.Context, actorID uint, input I) (R, error)) error {
	var input I
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	result, err := create(c.UserContext(), middlewares.CurrentUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}

func updateWith[P any, R any](c *fiber.Ctx, update func(ctx context.Context, actorID, id uint, patch P) (R, error)) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, services.ErrInvalidInput.Message)
	}
	result, err := update(c.UserContext(), middlewares.CurrentUserID(c), id, patch)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

func deleteWith(c *fiber.Ctx, del func(ctx context.Context, actorID, id uint) error, msg string) error {
	id, ok := reqparams.ID(c, "id")
	if !ok {
		return response.BadRequest(c, services.ErrInvalidID.Message)
	}
	if err := del(c.UserContext(), middlewares.CurrentUserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, msg)
}

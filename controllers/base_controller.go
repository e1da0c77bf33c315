package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/lib/metrics"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse the request")
		return errors.New("failed to read the request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetParamID(ctx, "id")
}

func (c *BaseAPIController) GetParamID(ctx *fiber.Ctx, param string) (string, error) {
	id := ctx.Params(param)
	if id == "" {
		return "", errors.Errorf("%s is not set", param)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Errorf("invalid %s: %s", param, id)
	}
	return id, nil
}

// SendError maps domain errors to the response status: validation failures
// give 400 with the offending field, missing records 404, anything else 500.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	if vErr, ok := models.AsValidationError(err); ok {
		metrics.ObserveValidation(vErr.Field)
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewFieldError(vErr.Field, vErr.Message))
	}
	if models.IsNotFound(err) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}

func (c *BaseAPIController) SendBadRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
}

func (c *BaseAPIController) SendOK(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

func (c *BaseAPIController) SendScroller(ctx *fiber.Ctx, data interface{}, rowCount int64) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(data, rowCount))
}

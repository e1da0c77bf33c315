package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "academic-records-backend/lib/utils/auth-utils"
	apimodels "academic-records-backend/models/api"
)

// StaffRequired lets through the users allowed into the admin API.
func StaffRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !authutils.IsStaff(ctx) && !authutils.IsSuperuser(ctx) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}

func SuperuserRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !authutils.IsSuperuser(ctx) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}

package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"academic-records-backend/config"
	"academic-records-backend/models"
)

func GetToken(userID, name string, isStaff, isSuperuser bool) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":      name,
		"sub":       userID,
		"staff":     isStaff,
		"superuser": isSuperuser,
		"role":      string(models.RoleOf(isStaff, isSuperuser)),
		"exp":       time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetUserID(ctx *fiber.Ctx) string {
	sub, _ := GetClaims(ctx)["sub"].(string)
	return sub
}

func IsSuperuser(ctx *fiber.Ctx) bool {
	superuser, _ := GetClaims(ctx)["superuser"].(bool)
	return superuser
}

func IsStaff(ctx *fiber.Ctx) bool {
	staff, _ := GetClaims(ctx)["staff"].(bool)
	return staff
}

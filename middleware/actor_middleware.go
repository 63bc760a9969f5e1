package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-requests-backend/lib/utils/auth-utils"
	"hr-requests-backend/models"
	apimodels "hr-requests-backend/models/api"
)

func GetUserCode(ctx *fiber.Ctx) string {
	return claimString(ctx, "sub")
}

func GetUserName(ctx *fiber.Ctx) string {
	return claimString(ctx, "name")
}

func GetUserEmail(ctx *fiber.Ctx) string {
	return claimString(ctx, "email")
}

func GetOrgPositionID(ctx *fiber.Ctx) string {
	return claimString(ctx, "org_position_id")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	if role := claimString(ctx, "role"); role != "" {
		return models.UserRole(role)
	}
	return ""
}

// GetActor resolves the acting user's session context from the JWT claims.
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		UserCode:      GetUserCode(ctx),
		UserName:      GetUserName(ctx),
		Email:         GetUserEmail(ctx),
		OrgPositionID: GetOrgPositionID(ctx),
		Role:          GetUserRole(ctx),
	}
}

// HRRoleRequired guards endpoints reserved for HR staff, e.g. printable
// letter generation.
func HRRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if role != models.UserRoleHR && !role.IsAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not permitted"))
		}
		return ctx.Next()
	}
}

func claimString(ctx *fiber.Ctx, name string) string {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims[name]; exist {
		if stringValue, ok := value.(string); ok {
			return stringValue
		}
	}
	return ""
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-requests-backend/controllers"
	"hr-requests-backend/lib/badge"
	"hr-requests-backend/middleware"
	apimodels "hr-requests-backend/models/api"
)

type badgeApiController struct {
	controllers.BaseAPIController
}

func InitBadgeApiRouters(app *fiber.App) {
	controller := badgeApiController{}
	app.Route("badge", func(router fiber.Router) {
		router.Get("wait_approval", controller.waitApproval)
	})
}

// @Summary Pending approval counter
// @Tags Badge
// @Description Returns the sidebar counter of requests waiting on the acting user
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/badge/wait_approval [get]
func (c *badgeApiController) waitApproval(ctx *fiber.Ctx) error {
	userCode := middleware.GetUserCode(ctx)
	count, err := badge.Instance.WaitApprovalCount(ctx.Context(), userCode)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to read badge counter")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(count))
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-requests-backend/controllers"
	"hr-requests-backend/lib/assignment"
	"hr-requests-backend/models"
	apimodels "hr-requests-backend/models/api"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employees", func(router fiber.Router) {
		router.Get("candidates", controller.candidates)
	})
}

// @Summary Candidate pool
// @Tags Employee
// @Description Lists the employees eligible for task assignment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   team        		query   string  true    "IT, HR or UNION"
// @Param   department  		query   string  false   "department filter for union members"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/hr/employees/candidates [get]
func (c *employeeApiController) candidates(ctx *fiber.Ctx) error {
	team := models.TeamKind(ctx.Query("team"))
	department := ctx.Query("department")
	resp, err := assignment.Instance.Candidates(team, department)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load candidate pool")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

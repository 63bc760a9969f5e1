package ws

import (
	wsclient "hr-requests-backend/lib/ws/client"
	connectionhub "hr-requests-backend/lib/ws/hub/connection-hub"
	"hr-requests-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		userCode := middleware.GetUserCode(ctx)
		ctx.Locals("userCode", userCode)
		return ctx.Next()
	})
	app.Get("/", websocket.New(badgeHandler))
}

// @Summary Badge counter push
// @Tags Websocket
// @Description Pushes refreshed pending-approval counters to the connected user
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func badgeHandler(c *websocket.Conn) {
	userCode := c.Locals("userCode").(string)
	client := wsclient.NewClient(userCode, c)
	connectionhub.Instance.AddClient(userCode, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userCode)
	}()
	client.Dispatch()
}

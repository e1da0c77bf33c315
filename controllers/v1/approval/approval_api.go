package approval

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	approvalprovider "academic-records-backend/lib/approval"
	authutils "academic-records-backend/lib/utils/auth-utils"
	"academic-records-backend/models"
	apimodels "academic-records-backend/models/api"
	approvalapimodels "academic-records-backend/models/api/approval"
)

type approvalApiController struct {
	controllers.BaseAPIController
}

func InitApprovalApiRouters(app *fiber.App) {
	controller := approvalApiController{}
	app.Route("approval/:kind", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("approve", controller.approve)
		router.Post("disapprove", controller.disapprove)
		router.Get(":id/history", controller.history)
	})
}

// @Summary Records by approval state
// @Tags Approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind		path	string	true	"article, patent, project, contribution or employee"
// @Param   approved	query	string	false	"true/false"
// @Param   page		query	int		false	"page"
// @Param   limit		query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]approvalapimodels.ApprovalRecordView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{kind} [get]
func (c *approvalApiController) list(ctx *fiber.Ctx) error {
	var filter approvalapimodels.ApprovalFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := approvalprovider.Instance.List(kindParam(ctx), filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendScroller(ctx, list, rowCount)
}

// @Summary Approve records
// @Tags Approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind	path	string	true	"article, patent, project, contribution or employee"
// @Param	body body	 approvalapimodels.ApprovalRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=apimodels.ActionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{kind}/approve [post]
func (c *approvalApiController) approve(ctx *fiber.Ctx) error {
	return c.decide(ctx, approvalprovider.Instance.Approve)
}

// @Summary Disapprove records
// @Tags Approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind	path	string	true	"article, patent, project, contribution or employee"
// @Param	body body	 approvalapimodels.ApprovalRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=apimodels.ActionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{kind}/disapprove [post]
func (c *approvalApiController) disapprove(ctx *fiber.Ctx) error {
	return c.decide(ctx, approvalprovider.Instance.Disapprove)
}

// @Summary Approval history of a record
// @Tags Approval
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind	path	string	true	"article, patent, project, contribution or employee"
// @Param   id		path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]approvalapimodels.ApprovalHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/approval/{kind}/{id}/history [get]
func (c *approvalApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	list, err := approvalprovider.Instance.History(kindParam(ctx), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

type decideFunc func(kind models.ApprovalKind, request approvalapimodels.ApprovalRequest, userID string) (apimodels.ActionResult, error)

func (c *approvalApiController) decide(ctx *fiber.Ctx, fn decideFunc) error {
	var payload approvalapimodels.ApprovalRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	result, err := fn(kindParam(ctx), payload, authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, result)
}

func kindParam(ctx *fiber.Ctx) models.ApprovalKind {
	return models.ApprovalKind(ctx.Params("kind"))
}

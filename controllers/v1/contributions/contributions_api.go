package contributions

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	authorprovider "academic-records-backend/lib/author"
	contributionprovider "academic-records-backend/lib/contribution"
	contributionapimodels "academic-records-backend/models/api/contribution"
)

type contributionsApiController struct {
	controllers.BaseAPIController
}

func InitContributionsApiRouters(app *fiber.App) {
	controller := contributionsApiController{}
	app.Route("authors", func(router fiber.Router) {
		router.Get("", controller.authorList)
		router.Post("", controller.authorCreate)
		router.Get(":id", controller.authorGet)
		router.Put(":id", controller.authorUpdate)
		router.Delete(":id", controller.authorDelete)
	})
	app.Route("contributions", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Author list
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"alias"
// @Param   group	query	string	false	"E - employees, A - others"
// @Success 200 {object} apimodels.Response{data=[]contributionapimodels.AuthorView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/authors [get]
func (c *contributionsApiController) authorList(ctx *fiber.Ctx) error {
	var filter contributionapimodels.AuthorFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := authorprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Create author
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 contributionapimodels.AuthorData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/authors [post]
func (c *contributionsApiController) authorCreate(ctx *fiber.Ctx) error {
	var payload contributionapimodels.AuthorData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := authorprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get author
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=contributionapimodels.AuthorView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/authors/{id} [get]
func (c *contributionsApiController) authorGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := authorprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update author
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 contributionapimodels.AuthorData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/authors/{id} [put]
func (c *contributionsApiController) authorUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload contributionapimodels.AuthorData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = authorprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete author
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/authors/{id} [delete]
func (c *contributionsApiController) authorDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = authorprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Contribution list
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   content_type	query	string	false	"article, patent or project"
// @Param   content_id		query	string	false	"element ID"
// @Param   author_id		query	string	false	"author ID"
// @Param   employee_id		query	string	false	"employee ID"
// @Param   approved		query	string	false	"true/false"
// @Param   page		query	int		false	"page"
// @Param   limit		query	int		false	"rows per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]contributionapimodels.ContributionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contributions [get]
func (c *contributionsApiController) list(ctx *fiber.Ctx) error {
	var filter contributionapimodels.ContributionFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, rowCount, err := contributionprovider.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendScroller(ctx, list, rowCount)
}

// @Summary Create contribution
// @Description Without author_status_id the single default status of the author's group is used.
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 contributionapimodels.ContributionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contributions [post]
func (c *contributionsApiController) create(ctx *fiber.Ctx) error {
	var payload contributionapimodels.ContributionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := contributionprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get contribution
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=contributionapimodels.ContributionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contributions/{id} [get]
func (c *contributionsApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := contributionprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update contribution
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 contributionapimodels.ContributionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contributions/{id} [put]
func (c *contributionsApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload contributionapimodels.ContributionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = contributionprovider.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete contribution
// @Tags Contributions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/contributions/{id} [delete]
func (c *contributionsApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = contributionprovider.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

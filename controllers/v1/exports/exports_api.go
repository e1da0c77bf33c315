package exports

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	exportprovider "academic-records-backend/lib/export"
	authutils "academic-records-backend/lib/utils/auth-utils"
	contributionapimodels "academic-records-backend/models/api/contribution"
	employeeapimodels "academic-records-backend/models/api/employee"
	exportapimodels "academic-records-backend/models/api/export"
)

const HeaderArchiveID = "X-Archive-ID"

type exportsApiController struct {
	controllers.BaseAPIController
}

func InitExportsApiRouters(app *fiber.App) {
	controller := exportsApiController{}
	app.Route("exports", func(router fiber.Router) {
		router.Get("employees/xlsx", controller.employees)
		router.Get("employees/:id/pdf", controller.employeeSheet)
		router.Get("contributions/xlsx", controller.contributions)
		router.Get("archives", controller.archives)
		router.Get("archives/:id", controller.archivedFile)
	})
}

// @Summary Employees workbook
// @Tags Exports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search		query	string	false	"name, username or ORCID"
// @Param   status_id	query	string	false	"employee status"
// @Param   employed	query	string	false	"true/false"
// @Param   approved	query	string	false	"true/false"
// @Param   archive		query	bool	false	"keep a copy in the archive"
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/employees/xlsx [get]
func (c *exportsApiController) employees(ctx *fiber.Ctx) error {
	var filter employeeapimodels.EmployeeFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	file, err := exportprovider.Instance.EmployeesWorkbook(ctx.UserContext(), filter, ctx.QueryBool("archive"), authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return sendFile(ctx, file)
}

// @Summary Employee output sheet
// @Tags Exports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id			path	string	true	"employee ID"
// @Param   archive		query	bool	false	"keep a copy in the archive"
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/employees/{id}/pdf [get]
func (c *exportsApiController) employeeSheet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	file, err := exportprovider.Instance.EmployeeSheet(ctx.UserContext(), id, ctx.QueryBool("archive"), authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return sendFile(ctx, file)
}

// @Summary Contributions workbook
// @Tags Exports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   content_type	query	string	false	"article, patent or project"
// @Param   author_id		query	string	false	"author ID"
// @Param   employee_id		query	string	false	"employee ID"
// @Param   approved		query	string	false	"true/false"
// @Param   archive			query	bool	false	"keep a copy in the archive"
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/contributions/xlsx [get]
func (c *exportsApiController) contributions(ctx *fiber.Ctx) error {
	var filter contributionapimodels.ContributionFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	file, err := exportprovider.Instance.ContributionsWorkbook(ctx.UserContext(), filter, ctx.QueryBool("archive"), authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return sendFile(ctx, file)
}

// @Summary Archived files
// @Tags Exports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind	query	string	false	"users-load, employees-export, contributions-export or employee-sheet"
// @Success 200 {object} apimodels.Response{data=[]exportapimodels.ArchivedFileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/archives [get]
func (c *exportsApiController) archives(ctx *fiber.Ctx) error {
	var filter exportapimodels.ArchiveFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := filter.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	list, err := exportprovider.Instance.Archives(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Download archived file
// @Tags Exports
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"archived file ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/exports/archives/{id} [get]
func (c *exportsApiController) archivedFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	file, err := exportprovider.Instance.ArchivedFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return sendFile(ctx, file)
}

func sendFile(ctx *fiber.Ctx, file exportapimodels.File) error {
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	if file.ArchiveID != "" {
		ctx.Set(HeaderArchiveID, file.ArchiveID)
	}
	return ctx.Status(fiber.StatusOK).Send(file.Data)
}

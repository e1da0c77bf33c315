package units

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	unitsprovider "academic-records-backend/lib/units"
	unitsapimodels "academic-records-backend/models/api/units"
)

type unitsApiController struct {
	controllers.BaseAPIController
}

func InitUnitsApiRouters(app *fiber.App) {
	controller := unitsApiController{}
	app.Route("units", func(router fiber.Router) {
		router.Get("tree", controller.tree)

		router.Get("universities", controller.universityList)
		router.Post("universities", controller.universityCreate)
		router.Get("universities/:id", controller.universityGet)
		router.Put("universities/:id", controller.universityUpdate)
		router.Delete("universities/:id", controller.universityDelete)

		router.Get("faculties", controller.facultyList)
		router.Post("faculties", controller.facultyCreate)
		router.Get("faculties/:id", controller.facultyGet)
		router.Put("faculties/:id", controller.facultyUpdate)
		router.Delete("faculties/:id", controller.facultyDelete)

		router.Get("departments", controller.departmentList)
		router.Post("departments", controller.departmentCreate)
		router.Get("departments/:id", controller.departmentGet)
		router.Put("departments/:id", controller.departmentUpdate)
		router.Delete("departments/:id", controller.departmentDelete)
	})
}

func (c *unitsApiController) filter(ctx *fiber.Ctx) (unitsapimodels.UnitFilter, error) {
	var filter unitsapimodels.UnitFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return filter, err
	}
	return filter, filter.Validate()
}

// @Summary Unit tree
// @Tags Units
// @Description Universities with their faculties and departments
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]unitsapimodels.UniversityTreeItem}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/tree [get]
func (c *unitsApiController) tree(ctx *fiber.Ctx) error {
	tree, err := unitsprovider.Instance.Tree()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, tree)
}

// @Summary University list
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"name or abbreviation"
// @Success 200 {object} apimodels.Response{data=[]unitsapimodels.UniversityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/universities [get]
func (c *unitsApiController) universityList(ctx *fiber.Ctx) error {
	filter, err := c.filter(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	list, err := unitsprovider.Instance.ListUniversities(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Create university
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 unitsapimodels.UniversityData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/universities [post]
func (c *unitsApiController) universityCreate(ctx *fiber.Ctx) error {
	var payload unitsapimodels.UniversityData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := unitsprovider.Instance.CreateUniversity(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get university
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=unitsapimodels.UniversityView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/universities/{id} [get]
func (c *unitsApiController) universityGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := unitsprovider.Instance.GetUniversity(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update university
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 unitsapimodels.UniversityData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/universities/{id} [put]
func (c *unitsApiController) universityUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload unitsapimodels.UniversityData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = unitsprovider.Instance.UpdateUniversity(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete university
// @Tags Units
// @Description Faculties and departments of the university are deleted too
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/universities/{id} [delete]
func (c *unitsApiController) universityDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = unitsprovider.Instance.DeleteUniversity(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Faculty list
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"name or abbreviation"
// @Param   parent_id	query	string	false	"university ID"
// @Success 200 {object} apimodels.Response{data=[]unitsapimodels.FacultyView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/faculties [get]
func (c *unitsApiController) facultyList(ctx *fiber.Ctx) error {
	filter, err := c.filter(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	list, err := unitsprovider.Instance.ListFaculties(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Create faculty
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 unitsapimodels.FacultyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/units/faculties [post]
func (c *unitsApiController) facultyCreate(ctx *fiber.Ctx) error {
	var payload unitsapimodels.FacultyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := unitsprovider.Instance.CreateFaculty(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get faculty
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=unitsapimodels.FacultyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/units/faculties/{id} [get]
func (c *unitsApiController) facultyGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := unitsprovider.Instance.GetFaculty(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update faculty
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 unitsapimodels.FacultyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/units/faculties/{id} [put]
func (c *unitsApiController) facultyUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload unitsapimodels.FacultyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = unitsprovider.Instance.UpdateFaculty(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete faculty
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/units/faculties/{id} [delete]
func (c *unitsApiController) facultyDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = unitsprovider.Instance.DeleteFaculty(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Department list
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search	query	string	false	"name or abbreviation"
// @Param   parent_id	query	string	false	"faculty ID"
// @Success 200 {object} apimodels.Response{data=[]unitsapimodels.DepartmentView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/units/departments [get]
func (c *unitsApiController) departmentList(ctx *fiber.Ctx) error {
	filter, err := c.filter(ctx)
	if err != nil {
		return c.SendError(ctx, err)
	}
	list, err := unitsprovider.Instance.ListDepartments(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, list)
}

// @Summary Create department
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 unitsapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/units/departments [post]
func (c *unitsApiController) departmentCreate(ctx *fiber.Ctx) error {
	var payload unitsapimodels.DepartmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	id, err := unitsprovider.Instance.CreateDepartment(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, id)
}

// @Summary Get department
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=unitsapimodels.DepartmentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/units/departments/{id} [get]
func (c *unitsApiController) departmentGet(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	item, err := unitsprovider.Instance.GetDepartment(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, item)
}

// @Summary Update department
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param	body body	 unitsapimodels.DepartmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @router /api/v1/units/departments/{id} [put]
func (c *unitsApiController) departmentUpdate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	var payload unitsapimodels.DepartmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = payload.Validate(); err != nil {
		return c.SendError(ctx, err)
	}
	if err = unitsprovider.Instance.UpdateDepartment(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

// @Summary Delete department
// @Tags Units
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @router /api/v1/units/departments/{id} [delete]
func (c *unitsApiController) departmentDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return c.SendBadRequest(ctx, err)
	}
	if err = unitsprovider.Instance.DeleteDepartment(id); err != nil {
		return c.SendError(ctx, err)
	}
	return c.SendOK(ctx, nil)
}

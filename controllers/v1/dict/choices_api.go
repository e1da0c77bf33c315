package dict

import (
	"github.com/gofiber/fiber/v2"

	"academic-records-backend/controllers"
	"academic-records-backend/models"
	dictapimodels "academic-records-backend/models/api/dict"
)

type choicesDictApiController struct {
	controllers.BaseAPIController
}

func InitChoicesDictApiRouters(app *fiber.App) {
	controller := choicesDictApiController{}
	app.Route("choices", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

type choicesView struct {
	Sexes          []dictapimodels.Option `json:"sexes"`
	YesNo          []dictapimodels.Option `json:"yes_no"`
	Domains        []dictapimodels.Option `json:"domains"`
	AuthorGroups   []dictapimodels.Option `json:"author_groups"`
	PublisherKinds []dictapimodels.Option `json:"publisher_kinds"`
	ElementKinds   []dictapimodels.Option `json:"element_kinds"`
	JournalRatings []int                  `json:"journal_ratings"`
}

// @Summary Fixed choices
// @Tags Dictionary
// @Description Values of the fixed choice fields with their labels
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=choicesView}
// @router /api/v1/dict/choices [get]
func (c *choicesDictApiController) list(ctx *fiber.Ctx) error {
	result := choicesView{
		Sexes: []dictapimodels.Option{
			{Value: string(models.SexNotGiven), Label: models.SexNotGiven.ToHuman()},
			{Value: string(models.SexFemale), Label: models.SexFemale.ToHuman()},
			{Value: string(models.SexMale), Label: models.SexMale.ToHuman()},
		},
		YesNo: []dictapimodels.Option{
			{Value: string(models.Yes), Label: models.Yes.ToHuman()},
			{Value: string(models.No), Label: models.No.ToHuman()},
		},
		Domains: []dictapimodels.Option{
			{Value: string(models.DomainSciences), Label: models.DomainSciences.ToHuman()},
			{Value: string(models.DomainEngineering), Label: models.DomainEngineering.ToHuman()},
		},
		AuthorGroups: []dictapimodels.Option{
			{Value: string(models.AuthorsEmployees), Label: models.AuthorsEmployees.ToHuman()},
			{Value: string(models.AuthorsNotEmployees), Label: models.AuthorsNotEmployees.ToHuman()},
		},
		PublisherKinds: []dictapimodels.Option{
			{Value: string(models.PublisherForeign), Label: models.PublisherForeign.ToHuman()},
			{Value: string(models.PublisherDomestic), Label: models.PublisherDomestic.ToHuman()},
		},
		JournalRatings: dictapimodels.RatingOptions(),
	}
	for _, kind := range models.ElementKinds {
		result.ElementKinds = append(result.ElementKinds, dictapimodels.Option{Value: string(kind), Label: kind.ToHuman()})
	}
	return c.SendOK(ctx, result)
}

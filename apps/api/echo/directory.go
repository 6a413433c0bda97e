package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/directory"
	"github.com/trezcool/portal/core/paper"
)

// filterOption is a select input of a directory page.
type filterOption struct {
	Name    string   `json:"name"`
	Default string   `json:"default"`
	Values  []string `json:"values"`
}

func filterOptions(schema *directory.Schema) []filterOption {
	dims := schema.Dimensions()
	opts := make([]filterOption, 0, len(dims))
	for _, d := range dims {
		opts = append(opts, filterOption{Name: d.Name, Default: directory.All, Values: d.Values})
	}
	return opts
}

type alumniApi struct {
	svc      *alumni.Service
	validate *validator.Validate
}

func registerAlumniAPI(g *echo.Group, svc *alumni.Service, validate *validator.Validate) {
	api := alumniApi{svc: svc, validate: validate}

	ag := g.Group("/alumni")
	ag.GET("", api.query)
	ag.GET("/filters", api.filters)
	ag.GET("/:id", api.retrieve)
}

func (api *alumniApi) query(ctx echo.Context) error {
	var filter alumni.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to alumni.QueryFilter")
	}
	if err := filter.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering alumni")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *alumniApi) filters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, filterOptions(alumni.Schema))
}

func (api *alumniApi) retrieve(ctx echo.Context) error {
	a, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting alumnus")
	}
	return ctx.JSON(http.StatusOK, a)
}

type paperApi struct {
	svc      *paper.Service
	validate *validator.Validate
}

func registerPaperAPI(g *echo.Group, svc *paper.Service, validate *validator.Validate) {
	api := paperApi{svc: svc, validate: validate}

	pg := g.Group("/papers")
	pg.GET("", api.query)
	pg.GET("/filters", api.filters)
	pg.GET("/:id", api.retrieve)
}

func (api *paperApi) query(ctx echo.Context) error {
	var filter paper.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to paper.QueryFilter")
	}
	if err := filter.Validate(api.validate); err != nil {
		return err
	}

	res, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "filtering papers")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *paperApi) filters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, filterOptions(paper.Schema))
}

func (api *paperApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting paper")
	}
	return ctx.JSON(http.StatusOK, p)
}

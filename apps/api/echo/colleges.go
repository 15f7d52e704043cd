package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core/college"
)

type collegeApi struct {
	svc college.ServiceInterface
}

func registerCollegeAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc college.ServiceInterface) {
	api := collegeApi{svc: svc}

	cg := g.Group("/colleges", jwt)
	cg.GET("", api.query)
	cg.POST("", api.create, adminMiddleware())
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update, adminMiddleware())
}

// Handlers

func (api *collegeApi) query(ctx echo.Context) error {
	filter := new(college.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []college.College{})
	}

	colleges, err := api.svc.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying colleges")
	}
	if colleges == nil {
		colleges = []college.College{}
	}
	return ctx.JSON(http.StatusOK, colleges)
}

func (api *collegeApi) create(ctx echo.Context) error {
	var data college.NewCollege
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCollege")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	c, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating college")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *collegeApi) retrieve(ctx echo.Context) error {
	id, err := collegeID(ctx)
	if err != nil {
		return err
	}
	c, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == college.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding college by ID")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *collegeApi) update(ctx echo.Context) error {
	id, err := collegeID(ctx)
	if err != nil {
		return err
	}

	orig, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == college.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding college by ID")
	}

	var data college.UpdateCollege
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCollege")
	}
	if err := data.Validate(orig); err != nil {
		return err
	}

	c, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating college")
	}
	return ctx.JSON(http.StatusOK, c)
}

func collegeID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}

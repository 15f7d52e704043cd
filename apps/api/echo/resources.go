package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core/resource"
)

type resourceApi struct {
	svc resource.ServiceInterface
}

func registerResourceAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc resource.ServiceInterface) {
	api := resourceApi{svc: svc}

	rg := g.Group("/resources", jwt)
	rg.GET("", api.query)
	rg.GET("/tags", api.queryTags)
	rg.POST("", api.publish, staffMiddleware())

	dg := rg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("/recommend", api.recommend, staffMiddleware())
	dg.DELETE("", api.destroy, staffMiddleware())
}

// Handlers

func (api *resourceApi) query(ctx echo.Context) error {
	filter := new(resource.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []resource.Resource{})
	}

	resources, err := api.svc.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying resources")
	}
	if resources == nil {
		resources = []resource.Resource{}
	}
	return ctx.JSON(http.StatusOK, resources)
}

func (api *resourceApi) queryTags(ctx echo.Context) error {
	tags, err := api.svc.TagOptions(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying tag options")
	}
	if tags == nil {
		tags = []string{}
	}
	return ctx.JSON(http.StatusOK, tags)
}

func (api *resourceApi) publish(ctx echo.Context) error {
	var data resource.NewResource
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewResource")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	r, err := api.svc.Publish(ctx.Request().Context(), data, claims.Subject)
	if err != nil {
		return errors.Wrap(err, "publishing resource")
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *resourceApi) retrieve(ctx echo.Context) error {
	id, err := resourceID(ctx)
	if err != nil {
		return err
	}
	r, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == resource.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding resource by ID")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *resourceApi) recommend(ctx echo.Context) error {
	id, err := resourceID(ctx)
	if err != nil {
		return err
	}

	var data RecommendRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RecommendRequest")
	}

	r, err := api.svc.SetRecommended(ctx.Request().Context(), id, data.Recommended)
	if err != nil {
		if errors.Cause(err) == resource.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "recommending resource")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *resourceApi) destroy(ctx echo.Context) error {
	id, err := resourceID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		if errors.Cause(err) == resource.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting resource")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func resourceID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}

type RecommendRequest struct {
	Recommended bool `json:"recommended"`
}

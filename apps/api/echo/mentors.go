package echoapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core/mentorship"
)

type mentorApi struct {
	svc mentorship.ServiceInterface
}

func registerMentorAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc mentorship.ServiceInterface) {
	api := mentorApi{svc: svc}

	mg := g.Group("/mentors")

	// un-authed endpoints
	mg.POST("/apply", api.apply, rateLimitMiddleware())

	// authed endpoints
	ag := mg.Group("", jwt)
	ag.GET("", api.query)
	ag.GET("/facets", api.queryFacets)

	dg := ag.Group("/:id")
	dg.GET("", api.retrieve)
	dg.POST("/approve", api.approve, adminMiddleware())
	dg.POST("/reject", api.reject, adminMiddleware())
	dg.PUT("/availability", api.setAvailability)
}

// Handlers

func (api *mentorApi) query(ctx echo.Context) error {
	filter := new(mentorship.MentorFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []mentorship.Mentor{})
	}

	mentors, err := api.svc.QueryMentors(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying mentors")
	}
	if mentors == nil {
		mentors = []mentorship.Mentor{}
	}
	return ctx.JSON(http.StatusOK, mentors)
}

func (api *mentorApi) queryFacets(ctx echo.Context) error {
	facets, err := api.svc.FacetOptions(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying facet options")
	}
	return ctx.JSON(http.StatusOK, facets)
}

func (api *mentorApi) apply(ctx echo.Context) error {
	var data mentorship.NewMentor
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMentor")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mentor, err := api.svc.SubmitApplication(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting mentor application")
	}
	return ctx.JSON(http.StatusCreated, mentor)
}

func (api *mentorApi) retrieve(ctx echo.Context) error {
	id, err := mentorID(ctx)
	if err != nil {
		return err
	}
	mentor, err := api.svc.GetMentor(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == mentorship.ErrMentorNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding mentor by ID")
	}
	return ctx.JSON(http.StatusOK, mentor)
}

func (api *mentorApi) approve(ctx echo.Context) error {
	return api.transition(ctx, api.svc.Approve)
}

func (api *mentorApi) reject(ctx echo.Context) error {
	return api.transition(ctx, api.svc.Reject)
}

func (api *mentorApi) transition(
	ctx echo.Context,
	apply func(ctx context.Context, id int) (mentorship.Mentor, error),
) error {
	id, err := mentorID(ctx)
	if err != nil {
		return err
	}
	mentor, err := apply(ctx.Request().Context(), id)
	if err != nil {
		switch errors.Cause(err) {
		case mentorship.ErrMentorNotFound:
			return errHttpNotFound
		case mentorship.ErrNotPending:
			return errHttpConflict
		}
		return errors.Wrap(err, "transitioning mentor application")
	}
	return ctx.JSON(http.StatusOK, mentor)
}

func (api *mentorApi) setAvailability(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if !(claims.IsMentor || claims.IsAdmin) {
		return errHttpForbidden
	}

	id, err := mentorID(ctx)
	if err != nil {
		return err
	}

	var data AvailabilityRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AvailabilityRequest")
	}

	mentor, err := api.svc.SetAvailability(ctx.Request().Context(), id, data.Availability)
	if err != nil {
		if errors.Cause(err) == mentorship.ErrMentorNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "setting mentor availability")
	}
	return ctx.JSON(http.StatusOK, mentor)
}

func mentorID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}

type AvailabilityRequest struct {
	Availability []mentorship.DayAvailability `json:"availability"`
}

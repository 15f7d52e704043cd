package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

type menteeApi struct {
	svc mentorship.ServiceInterface
}

func registerMenteeAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc mentorship.ServiceInterface) {
	api := menteeApi{svc: svc}

	mg := g.Group("/mentees")

	// un-authed endpoints
	mg.POST("/register", api.register, rateLimitMiddleware())

	// authed endpoints
	ag := mg.Group("", jwt)
	ag.GET("", api.query, staffMiddleware())
	ag.GET("/:id", api.retrieve)
	ag.POST("/assignments", api.assign, adminMiddleware())
}

// Handlers

func (api *menteeApi) query(ctx echo.Context) error {
	filter := new(mentorship.MenteeFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []mentorship.Mentee{})
	}

	mentees, err := api.svc.QueryMentees(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying mentees")
	}
	if mentees == nil {
		mentees = []mentorship.Mentee{}
	}
	return ctx.JSON(http.StatusOK, mentees)
}

func (api *menteeApi) register(ctx echo.Context) error {
	var data mentorship.NewMentee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMentee")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	mentee, err := api.svc.RegisterMentee(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "registering mentee")
	}
	return ctx.JSON(http.StatusCreated, mentee)
}

func (api *menteeApi) retrieve(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	mentee, err := api.svc.GetMentee(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == mentorship.ErrMenteeNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding mentee by ID")
	}
	return ctx.JSON(http.StatusOK, mentee)
}

func (api *menteeApi) assign(ctx echo.Context) error {
	var data AssignmentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AssignmentRequest")
	}

	mentee, err := api.svc.Assign(ctx.Request().Context(), data.MenteeID, data.MentorID)
	if err != nil {
		switch errors.Cause(err) {
		case mentorship.ErrNothingSelected:
			return core.NewValidationError(mentorship.ErrNothingSelected)
		case mentorship.ErrMentorNotFound, mentorship.ErrMenteeNotFound:
			return errHttpNotFound
		case mentorship.ErrAlreadyAssigned, mentorship.ErrCapacityExceeded:
			return echo.NewHTTPError(http.StatusConflict, errors.Cause(err).Error())
		}
		return errors.Wrap(err, "assigning mentor")
	}
	return ctx.JSON(http.StatusOK, mentee)
}

type AssignmentRequest struct {
	MenteeID int `json:"mentee_id"`
	MentorID int `json:"mentor_id"`
}

package echoapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

type meetingApi struct {
	svc meeting.ServiceInterface
}

func registerMeetingAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc meeting.ServiceInterface) {
	api := meetingApi{svc: svc}

	mg := g.Group("/meetings", jwt)
	mg.GET("", api.query)
	mg.POST("", api.schedule, staffMiddleware())

	dg := mg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.POST("/complete", api.complete, staffMiddleware())
	dg.POST("/cancel", api.cancel, staffMiddleware())
	dg.POST("/feedback", api.submitFeedback)
}

// Handlers

func (api *meetingApi) query(ctx echo.Context) error {
	filter := new(meeting.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []meeting.Meeting{})
	}

	meetings, err := api.svc.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying meetings")
	}
	if meetings == nil {
		meetings = []meeting.Meeting{}
	}
	return ctx.JSON(http.StatusOK, meetings)
}

func (api *meetingApi) schedule(ctx echo.Context) error {
	var data meeting.NewMeeting
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewMeeting")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	m, err := api.svc.Schedule(ctx.Request().Context(), data)
	if err != nil {
		switch errors.Cause(err) {
		case mentorship.ErrMentorNotFound, mentorship.ErrMenteeNotFound:
			return core.NewValidationError(errors.Cause(err))
		}
		return errors.Wrap(err, "scheduling meeting")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *meetingApi) retrieve(ctx echo.Context) error {
	id, err := meetingID(ctx)
	if err != nil {
		return err
	}
	m, err := api.svc.Get(ctx.Request().Context(), id)
	if err != nil {
		if errors.Cause(err) == meeting.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding meeting by ID")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *meetingApi) complete(ctx echo.Context) error {
	return api.transition(ctx, api.svc.Complete)
}

func (api *meetingApi) cancel(ctx echo.Context) error {
	return api.transition(ctx, api.svc.Cancel)
}

func (api *meetingApi) transition(
	ctx echo.Context,
	apply func(ctx context.Context, id int) (meeting.Meeting, error),
) error {
	id, err := meetingID(ctx)
	if err != nil {
		return err
	}
	m, err := apply(ctx.Request().Context(), id)
	if err != nil {
		switch errors.Cause(err) {
		case meeting.ErrNotFound:
			return errHttpNotFound
		case meeting.ErrFinalStatus:
			return errHttpConflict
		}
		return errors.Wrap(err, "transitioning meeting")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *meetingApi) submitFeedback(ctx echo.Context) error {
	id, err := meetingID(ctx)
	if err != nil {
		return err
	}

	var data FeedbackRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to FeedbackRequest")
	}

	m, err := api.svc.SubmitFeedback(ctx.Request().Context(), id, data.Rating, data.Comments)
	if err != nil {
		switch errors.Cause(err) {
		case meeting.ErrNotFound:
			return errHttpNotFound
		case meeting.ErrNotCompleted, meeting.ErrFeedbackExists, meeting.ErrInvalidRating:
			return core.NewValidationError(errors.Cause(err))
		}
		return errors.Wrap(err, "submitting feedback")
	}
	return ctx.JSON(http.StatusOK, m)
}

func meetingID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, errHttpNotFound
	}
	return id, nil
}

type FeedbackRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

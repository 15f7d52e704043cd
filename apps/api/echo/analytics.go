package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core/meeting"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

type analyticsApi struct {
	mentorshipSvc mentorship.ServiceInterface
	meetingSvc    meeting.ServiceInterface
}

func registerAnalyticsAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	mentorshipSvc mentorship.ServiceInterface,
	meetingSvc meeting.ServiceInterface,
) {
	api := analyticsApi{mentorshipSvc: mentorshipSvc, meetingSvc: meetingSvc}

	ag := g.Group("/analytics", jwt, staffMiddleware())
	ag.GET("/colleges", api.collegeDistribution)
	ag.GET("/interests", api.interestDistribution)
	ag.GET("/programs", api.programDistribution)
	ag.GET("/attendance", api.attendance)
	ag.GET("/ratings", api.ratings)
}

// Handlers

func (api *analyticsApi) collegeDistribution(ctx echo.Context) error {
	mentees, err := api.mentorshipSvc.QueryMentees(ctx.Request().Context(), mentorship.MenteeFilter{})
	if err != nil {
		return errors.Wrap(err, "querying mentees")
	}
	return ctx.JSON(http.StatusOK, mentorship.CollegeDistribution(mentees))
}

func (api *analyticsApi) interestDistribution(ctx echo.Context) error {
	mentees, err := api.mentorshipSvc.QueryMentees(ctx.Request().Context(), mentorship.MenteeFilter{})
	if err != nil {
		return errors.Wrap(err, "querying mentees")
	}
	mentors, err := api.mentorshipSvc.QueryMentors(ctx.Request().Context(), mentorship.MentorFilter{})
	if err != nil {
		return errors.Wrap(err, "querying mentors")
	}
	return ctx.JSON(http.StatusOK, mentorship.InterestDistribution(mentees, mentors))
}

func (api *analyticsApi) programDistribution(ctx echo.Context) error {
	mentees, err := api.mentorshipSvc.QueryMentees(ctx.Request().Context(), mentorship.MenteeFilter{})
	if err != nil {
		return errors.Wrap(err, "querying mentees")
	}
	return ctx.JSON(http.StatusOK, mentorship.ProgramDistribution(mentees))
}

func (api *analyticsApi) attendance(ctx echo.Context) error {
	meetings, err := api.meetingSvc.Query(ctx.Request().Context(), meeting.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying meetings")
	}
	return ctx.JSON(http.StatusOK, meeting.AttendanceByMonth(meetings))
}

func (api *analyticsApi) ratings(ctx echo.Context) error {
	meetings, err := api.meetingSvc.Query(ctx.Request().Context(), meeting.QueryFilter{})
	if err != nil {
		return errors.Wrap(err, "querying meetings")
	}
	return ctx.JSON(http.StatusOK, meeting.AverageRatingByMentor(meetings))
}

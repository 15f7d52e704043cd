package echoapi

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mentorhub/mentorhub/core"
	"github.com/mentorhub/mentorhub/core/booking"
	"github.com/mentorhub/mentorhub/core/mentorship"
)

// bookingApi keeps one in-flight booking workflow per authenticated user.
// Workflows live in memory only; an abandoned one is simply overwritten the
// next time the user starts booking.
type bookingApi struct {
	mentorshipSvc mentorship.ServiceInterface
	bookingSvc    booking.ServiceInterface

	mu       sync.Mutex
	sessions map[string]*booking.Workflow
}

func registerBookingAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	mentorshipSvc mentorship.ServiceInterface,
	bookingSvc booking.ServiceInterface,
) {
	api := bookingApi{
		mentorshipSvc: mentorshipSvc,
		bookingSvc:    bookingSvc,
		sessions:      make(map[string]*booking.Workflow),
	}

	bg := g.Group("/booking", jwt)
	bg.GET("", api.retrieve)
	bg.DELETE("", api.reset)
	bg.POST("/mentor", api.selectMentor)
	bg.GET("/dates", api.queryDates)
	bg.GET("/slots", api.querySlots)
	bg.POST("/date", api.selectDate)
	bg.POST("/slot", api.selectSlot)
	bg.POST("/next", api.next)
	bg.POST("/back", api.back)
	bg.POST("/submit", api.submit)
}

func (api *bookingApi) workflow(ctx echo.Context) (*booking.Workflow, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting context claims")
	}

	api.mu.Lock()
	defer api.mu.Unlock()
	wf, ok := api.sessions[claims.Subject]
	if !ok {
		wf = new(booking.Workflow)
		api.sessions[claims.Subject] = wf
	}
	return wf, nil
}

// workflowError maps workflow transition errors to client errors.
func workflowError(err error) error {
	switch errors.Cause(err) {
	case booking.ErrWrongStep:
		return errHttpConflict
	case booking.ErrDateUnavailable, booking.ErrSlotUnavailable, booking.ErrIncompleteSelection,
		booking.ErrTopicRequired, booking.ErrInvalidDuration:
		return core.NewValidationError(errors.Cause(err))
	}
	return err
}

// Handlers

func (api *bookingApi) retrieve(ctx echo.Context) error {
	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, wf)
}

func (api *bookingApi) reset(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	api.mu.Lock()
	delete(api.sessions, claims.Subject)
	api.mu.Unlock()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *bookingApi) selectMentor(ctx echo.Context) error {
	var data SelectMentorRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectMentorRequest")
	}

	mentor, err := api.mentorshipSvc.GetMentor(ctx.Request().Context(), data.MentorID)
	if err != nil {
		if errors.Cause(err) == mentorship.ErrMentorNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding mentor by ID")
	}

	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	if err := wf.SelectMentor(mentor); err != nil {
		return workflowError(err)
	}
	return ctx.JSON(http.StatusOK, wf)
}

func (api *bookingApi) queryDates(ctx echo.Context) error {
	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	dates := wf.AvailableDates()
	if dates == nil {
		dates = []string{}
	}
	return ctx.JSON(http.StatusOK, dates)
}

func (api *bookingApi) querySlots(ctx echo.Context) error {
	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	slots := wf.SlotsOn(ctx.QueryParam("date"))
	if slots == nil {
		slots = []string{}
	}
	return ctx.JSON(http.StatusOK, slots)
}

func (api *bookingApi) selectDate(ctx echo.Context) error {
	var data SelectDateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectDateRequest")
	}

	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	if err := wf.SelectDate(data.Date); err != nil {
		return workflowError(err)
	}
	return ctx.JSON(http.StatusOK, wf)
}

func (api *bookingApi) selectSlot(ctx echo.Context) error {
	var data SelectSlotRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectSlotRequest")
	}

	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	if err := wf.SelectSlot(data.Slot); err != nil {
		return workflowError(err)
	}
	return ctx.JSON(http.StatusOK, wf)
}

func (api *bookingApi) next(ctx echo.Context) error {
	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	if err := wf.Next(); err != nil {
		return workflowError(err)
	}
	return ctx.JSON(http.StatusOK, wf)
}

func (api *bookingApi) back(ctx echo.Context) error {
	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}
	wf.Back()
	return ctx.JSON(http.StatusOK, wf)
}

func (api *bookingApi) submit(ctx echo.Context) error {
	var data SubmitBookingRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitBookingRequest")
	}

	wf, err := api.workflow(ctx)
	if err != nil {
		return err
	}

	// Submit resets the workflow; keep a copy so a failed hand-off does not
	// force the user to start over.
	snapshot := *wf
	req, err := wf.Submit(data.Topic, data.Notes, data.DurationMinutes)
	if err != nil {
		return workflowError(err)
	}

	if err := api.bookingSvc.SubmitRequest(ctx.Request().Context(), req); err != nil {
		*wf = snapshot
		if errors.Cause(err) == booking.ErrSlotUnavailable {
			return echo.NewHTTPError(http.StatusConflict, booking.ErrSlotUnavailable.Error())
		}
		return errors.Wrap(err, "submitting booking request")
	}
	return ctx.JSON(http.StatusOK, req)
}

type (
	SelectMentorRequest struct {
		MentorID int `json:"mentor_id"`
	}

	SelectDateRequest struct {
		Date string `json:"date"`
	}

	SelectSlotRequest struct {
		Slot string `json:"slot"`
	}

	SubmitBookingRequest struct {
		Topic           string `json:"topic"`
		Notes           string `json:"notes"`
		DurationMinutes int    `json:"duration_minutes"`
	}
)

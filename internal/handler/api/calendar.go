package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/staff"
	reqdto "barberflow/internal/handler/dto/request"
	resdto "barberflow/internal/handler/dto/response"
	"barberflow/internal/handler/httperr"
	"barberflow/internal/handler/middleware"
	"barberflow/internal/pkg/config"
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidEventID = errors.New("invalid event id")

type CalendarHandler struct {
	cmds commands.CalendarCommands
	q    queries.CalendarQueries
	loc  *time.Location
}

func NewCalendarHandler(cmds commands.CalendarCommands, q queries.CalendarQueries, cfg config.Config) *CalendarHandler {
	return &CalendarHandler{cmds: cmds, q: q, loc: cfg.Calendar.Location()}
}

// @Summary Open calendar
// @Description Open an admin calendar session and load the first range
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenCalendarRequest true "Viewport, view and range"
// @Success 201 {object} queries.CalendarView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar [post]
func (h *CalendarHandler) Open(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	var req reqdto.OpenCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	id, err := h.cmds.Open(c.Request.Context(), member, cmd)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	h.respond(c, http.StatusCreated, id, member)
}

// @Summary Get calendar
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Success 200 {object} queries.CalendarView
// @Failure 404 {object} httperr.Response
// @Router /api/admin/calendar/{id} [get]
func (h *CalendarHandler) Get(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, c.Param("id"), member)
}

// @Summary Change visible range
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param request body reqdto.SetRangeRequest true "Range and view"
// @Success 200 {object} queries.CalendarView
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar/{id}/range [put]
func (h *CalendarHandler) SetRange(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	var req reqdto.SetRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	rng, view, err := req.ToDomain()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, member, h.cmds.SetRange(c.Request.Context(), c.Param("id"), member, rng, view))
}

// @Summary Filter by barber
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param request body reqdto.SetFilterRequest true "Barber filter"
// @Success 200 {object} queries.CalendarView
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar/{id}/filter [put]
func (h *CalendarHandler) SetFilter(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	var req reqdto.SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, member, h.cmds.SetFilter(c.Request.Context(), c.Param("id"), member, req.BarberID))
}

// @Summary Report viewport
// @Description Report a resized viewport; crossing the mobile breakpoint resets the view
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param request body reqdto.ViewportRequest true "Viewport"
// @Success 200 {object} queries.CalendarView
// @Router /api/admin/calendar/{id}/viewport [put]
func (h *CalendarHandler) SetViewport(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	var req reqdto.ViewportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	viewport := calendar.Viewport{Width: req.Width}
	h.apply(c, member, h.cmds.SetViewport(c.Request.Context(), c.Param("id"), member, viewport))
}

// @Summary Move booking
// @Description Reschedule by drag; reverted when the booking API refuses
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param eventId path int true "Booking ID"
// @Param request body reqdto.MoveEventRequest true "New span"
// @Success 200 {object} resdto.EditResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar/{id}/events/{eventId}/move [patch]
func (h *CalendarHandler) Move(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	var req reqdto.MoveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.Move(c.Request.Context(), c.Param("id"), member, eventID, req.Start, req.End)
	h.edited(c, result, err)
}

// @Summary Resize booking
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param eventId path int true "Booking ID"
// @Param request body reqdto.ResizeEventRequest true "New end"
// @Success 200 {object} resdto.EditResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar/{id}/events/{eventId}/resize [patch]
func (h *CalendarHandler) Resize(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ResizeEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	result, err := h.cmds.Resize(c.Request.Context(), c.Param("id"), member, eventID, req.End)
	h.edited(c, result, err)
}

// @Summary Change booking status
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param eventId path int true "Booking ID"
// @Param request body reqdto.ChangeStatusRequest true "Status"
// @Success 200 {object} queries.CalendarView
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/calendar/{id}/events/{eventId}/status [post]
func (h *CalendarHandler) ChangeStatus(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	h.apply(c, member, h.cmds.ChangeStatus(c.Request.Context(), c.Param("id"), member, eventID, status))
}

// @Summary Delete booking
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param eventId path int true "Booking ID"
// @Success 200 {object} queries.CalendarView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar/{id}/events/{eventId} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	h.apply(c, member, h.cmds.Delete(c.Request.Context(), c.Param("id"), member, eventID))
}

// @Summary Event details
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param eventId path int true "Booking ID"
// @Success 200 {object} queries.EventDetailsView
// @Failure 404 {object} httperr.Response
// @Router /api/admin/calendar/{id}/events/{eventId} [get]
func (h *CalendarHandler) EventDetails(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	details, err := h.q.EventDetails(c.Request.Context(), c.Param("id"), member, eventID)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, details)
}

// @Summary Create booking from the calendar
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param request body reqdto.AdminBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar/{id}/bookings [post]
func (h *CalendarHandler) CreateBooking(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	var req reqdto.AdminBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	form, err := req.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	id, err := h.cmds.CreateBooking(c.Request.Context(), c.Param("id"), member, form)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{BookingID: id})
}

// @Summary Edit booking from the calendar
// @Description Replace the booking's form fields; an empty status keeps the current one
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param eventId path int true "Booking ID"
// @Param request body reqdto.AdminBookingRequest true "Booking"
// @Success 200 {object} queries.CalendarView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/admin/calendar/{id}/events/{eventId} [put]
func (h *CalendarHandler) EditBooking(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	var req reqdto.AdminBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	form, err := req.ToDomain()
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	h.apply(c, member, h.cmds.EditBooking(c.Request.Context(), c.Param("id"), member, eventID, form))
}

// @Summary Click on empty calendar space
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar session ID"
// @Param request body reqdto.DateClickRequest true "Clicked instant"
// @Success 200 {object} resdto.DateClickResponse
// @Router /api/admin/calendar/{id}/date-click [post]
func (h *CalendarHandler) DateClick(c *gin.Context) {
	member, ok := h.member(c)
	if !ok {
		return
	}
	var req reqdto.DateClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	action, err := h.cmds.DateClick(c.Request.Context(), c.Param("id"), member, req.At.In(h.loc), req.AllDay)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDateClick(action))
}

func (h *CalendarHandler) member(c *gin.Context) (staff.Member, bool) {
	member, ok := middleware.GetMember(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing staff member"), "Unauthorized", nil)
	}
	return member, ok
}

// edited reports an optimistic edit. A reverted edit still carries the
// restored span so the client can redraw it.
func (h *CalendarHandler) edited(c *gin.Context, result *commands.EditResult, err error) {
	if err != nil {
		var detail gin.H
		if result != nil {
			detail = gin.H{"edit": resdto.FromEditResult(result, h.loc)}
		}
		abortWithUseCaseError(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEditResult(result, h.loc))
}

func (h *CalendarHandler) apply(c *gin.Context, member staff.Member, err error) {
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	h.respond(c, http.StatusOK, c.Param("id"), member)
}

func (h *CalendarHandler) respond(c *gin.Context, status int, id string, member staff.Member) {
	view, err := h.q.Get(c.Request.Context(), id, member)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(status, view)
}

func eventIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("eventId"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidEventID, "Invalid event id", nil)
		return 0, false
	}
	return id, true
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"barberflow/internal/domain/calendar"
	"barberflow/internal/domain/staff"
	"barberflow/internal/handler/api"
	resdto "barberflow/internal/handler/dto/response"
	"barberflow/internal/handler/middleware"
	"barberflow/internal/pkg/config"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/pkg/ptr"
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/queries"
	"barberflow/internal/usecase/shared"
	"barberflow/tests/common/httptest"
	commandsmock "barberflow/tests/mock/commands"
	queriesmock "barberflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const calendarID = "0f9d3c1e-7b52-4a0e-8f6d-2a1c5e9b7d44"

var (
	deskMember   = staff.Member{ID: 2, Role: staff.RoleReception}
	barberMember = staff.Member{ID: 3, Role: staff.RoleBarber}
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCalendarCommands
	mockQueries  *queriesmock.MockCalendarQueries
	handler      *api.CalendarHandler
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCalendarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	s.handler = api.NewCalendarHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	// Mock authentication: the bearer token names the role
	authMiddleware := func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "Bearer reception":
			middleware.SetMember(c, deskMember)
		case "Bearer barber":
			middleware.SetMember(c, barberMember)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}
	desk := middleware.NewAuthMiddleware(nil).RequireRoleAtLeast(staff.RoleReception)

	g := s.router.Group("/calendar", authMiddleware)
	g.POST("", s.handler.Open)
	g.GET("/:id", s.handler.Get)
	g.PUT("/:id/range", s.handler.SetRange)
	g.PUT("/:id/filter", s.handler.SetFilter)
	g.PUT("/:id/viewport", s.handler.SetViewport)
	g.POST("/:id/date-click", s.handler.DateClick)
	g.GET("/:id/events/:eventId", s.handler.EventDetails)
	g.PATCH("/:id/events/:eventId/move", desk, s.handler.Move)
	g.PATCH("/:id/events/:eventId/resize", desk, s.handler.Resize)
	g.POST("/:id/events/:eventId/status", desk, s.handler.ChangeStatus)
	g.PUT("/:id/events/:eventId", desk, s.handler.EditBooking)
	g.DELETE("/:id/events/:eventId", desk, s.handler.Delete)
	g.POST("/:id/bookings", desk, s.handler.CreateBooking)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) expectView(member staff.Member) {
	s.mockQueries.EXPECT().Get(gomock.Any(), calendarID, member).
		Return(&queries.CalendarView{SessionID: calendarID, View: string(calendar.ViewWeek)}, nil).Times(1)
}

func slot(h, m int) time.Time {
	return time.Date(2025, 11, 29, h, m, 0, 0, time.UTC)
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *CalendarHandlerTestSuite) TestOpen() {
	reqBody := map[string]any{
		"viewport_width": 1280,
		"start":          "2025-11-24T00:00:00Z",
		"end":            "2025-12-01T00:00:00Z",
	}

	s.Run("success: 201 with the first view", func() {
		want := commands.OpenCalendarRequest{
			Viewport: calendar.Viewport{Width: 1280},
			Range:    calendar.Range{Start: slot(0, 0).AddDate(0, 0, -5), End: slot(0, 0).AddDate(0, 0, 2)},
		}
		s.mockCommands.EXPECT().Open(gomock.Any(), deskMember, gomock.Any()).
			DoAndReturn(func(_ any, _ staff.Member, got commands.OpenCalendarRequest) (string, error) {
				s.Empty(cmp.Diff(want, got))
				return calendarID, nil
			}).Times(1)
		s.expectView(deskMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar", reqBody, "reception")

		var body queries.CalendarView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(calendarID, body.SessionID)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 for an unknown view", func() {
		body := map[string]any{"viewport_width": 1280, "view": "listWeek", "start": reqBody["start"], "end": reqBody["end"]}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar", body, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 for an inverted range", func() {
		body := map[string]any{"viewport_width": 1280, "start": reqBody["end"], "end": reqBody["start"]}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar", body, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestNavigation
// ================================================================================

func (s *CalendarHandlerTestSuite) TestNavigation() {
	s.Run("success: range change", func() {
		rng := calendar.Range{Start: slot(0, 0).AddDate(0, 0, 2), End: slot(0, 0).AddDate(0, 0, 9)}
		s.mockCommands.EXPECT().SetRange(gomock.Any(), calendarID, deskMember, rng, calendar.ViewWeek).Return(nil).Times(1)
		s.expectView(deskMember)

		body := map[string]any{"start": "2025-12-01T00:00:00Z", "end": "2025-12-08T00:00:00Z", "view": "timeGridWeek"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/calendar/"+calendarID+"/range", body, "reception")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: omitted barber clears the filter", func() {
		s.mockCommands.EXPECT().SetFilter(gomock.Any(), calendarID, deskMember, (*int64)(nil)).Return(nil).Times(1)
		s.expectView(deskMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/calendar/"+calendarID+"/filter", map[string]any{}, "reception")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: filter by barber", func() {
		s.mockCommands.EXPECT().SetFilter(gomock.Any(), calendarID, deskMember, ptr.Of(int64(3))).Return(nil).Times(1)
		s.expectView(deskMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/calendar/"+calendarID+"/filter", map[string]any{"barber_id": 3}, "reception")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: viewport", func() {
		s.mockCommands.EXPECT().SetViewport(gomock.Any(), calendarID, barberMember, calendar.Viewport{Width: 390}).Return(nil).Times(1)
		s.expectView(barberMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/calendar/"+calendarID+"/viewport", map[string]any{"width": 390}, "barber")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 502 when the refetch fails", func() {
		s.mockCommands.EXPECT().SetFilter(gomock.Any(), calendarID, deskMember, gomock.Any()).
			Return(errs.Mark(errs.New("timeout"), errs.ErrUpstreamUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/calendar/"+calendarID+"/filter", map[string]any{}, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Booking service unavailable")
	})
}

// ================================================================================
// TestMove
// ================================================================================

func (s *CalendarHandlerTestSuite) TestMove() {
	url := "/calendar/" + calendarID + "/events/7/move"
	body := map[string]any{"start": "2025-11-29T11:00:00Z", "end": "2025-11-29T11:30:00Z"}
	prior := calendar.Span{Start: slot(10, 0), End: slot(10, 30)}
	proposed := calendar.Span{Start: slot(11, 0), End: slot(11, 30)}

	s.Run("success: committed edit", func() {
		result := &commands.EditResult{Edit: calendar.Edit{
			EventID: 7, Kind: calendar.EditMove, Prior: prior, Proposed: proposed, State: calendar.EditCommitted,
		}}
		s.mockCommands.EXPECT().Move(gomock.Any(), calendarID, deskMember, int64(7), slot(11, 0), slot(11, 30)).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "reception")

		var got resdto.EditResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("committed", got.State)
		s.True(got.Span.Start.Equal(slot(11, 0)))
	})

	s.Run("error: reverted edit reports the restored span", func() {
		result := &commands.EditResult{
			Edit: calendar.Edit{
				EventID: 7, Kind: calendar.EditMove, Prior: prior, Proposed: proposed, State: calendar.EditReverted,
			},
			Restored: true,
		}
		s.mockCommands.EXPECT().Move(gomock.Any(), calendarID, deskMember, int64(7), gomock.Any(), gomock.Any()).
			Return(result, rejected("Barber is busy", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Barber is busy")
		s.JSONEq(`{
			"error": {"message": "Barber is busy"},
			"detail": {"edit": {
				"event_id": 7, "kind": "move", "state": "reverted", "restored": true,
				"span": {"start": "2025-11-29T10:00:00Z", "end": "2025-11-29T10:30:00Z"}
			}}
		}`, rec.Body.String())
	})

	s.Run("error: 409 while another edit is pending", func() {
		s.mockCommands.EXPECT().Move(gomock.Any(), calendarID, deskMember, int64(7), gomock.Any(), gomock.Any()).
			Return(nil, calendar.ErrEditInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "in progress")
		s.NotContains(rec.Body.String(), "detail")
	})

	s.Run("error: 422 in month view", func() {
		s.mockCommands.EXPECT().Move(gomock.Any(), calendarID, deskMember, int64(7), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrViewNotEditable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "reception")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 403 for a barber", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "barber")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 for a malformed event id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/calendar/"+calendarID+"/events/abc/move", body, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event id")
	})
}

func (s *CalendarHandlerTestSuite) TestResize() {
	s.Run("success: new end forwarded", func() {
		result := &commands.EditResult{Edit: calendar.Edit{
			EventID: 7, Kind: calendar.EditResize, State: calendar.EditCommitted,
			Proposed: calendar.Span{Start: slot(10, 0), End: slot(11, 0)},
		}}
		s.mockCommands.EXPECT().Resize(gomock.Any(), calendarID, deskMember, int64(7), slot(11, 0)).Return(result, nil).Times(1)

		body := map[string]any{"end": "2025-11-29T11:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/calendar/"+calendarID+"/events/7/resize", body, "reception")

		var got resdto.EditResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("resize", got.Kind)
	})
}

// ================================================================================
// TestMutations
// ================================================================================

func (s *CalendarHandlerTestSuite) TestMutations() {
	s.Run("success: status change returns the view", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), calendarID, deskMember, int64(7), calendar.StatusCompleted).Return(nil).Times(1)
		s.expectView(deskMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar/"+calendarID+"/events/7/status", map[string]any{"status": "completed"}, "reception")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar/"+calendarID+"/events/7/status", map[string]any{"status": "archived"}, "reception")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("success: delete returns the view", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), calendarID, deskMember, int64(7)).Return(nil).Times(1)
		s.expectView(deskMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/calendar/"+calendarID+"/events/7", nil, "reception")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for an event outside the loaded range", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), calendarID, deskMember, int64(99)).Return(calendar.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/calendar/"+calendarID+"/events/99", nil, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})

	s.Run("error: 403 when a barber deletes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/calendar/"+calendarID+"/events/7", nil, "barber")

		s.Equal(http.StatusForbidden, rec.Code)
	})
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *CalendarHandlerTestSuite) TestCreateBooking() {
	url := "/calendar/" + calendarID + "/bookings"
	reqBody := map[string]any{
		"service_id":   1,
		"barber_id":    3,
		"date":         "2025-11-29",
		"time":         "10:00",
		"client_name":  "Giorgi Giorgadze",
		"client_phone": "555 010 203",
	}

	s.Run("success: empty status left for the default", func() {
		want := shared.AdminBooking{
			ServiceID: 1, BarberID: 3, Date: "2025-11-29", Time: "10:00",
			ClientName: "Giorgi Giorgadze", ClientPhone: "555 010 203",
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), calendarID, deskMember, want).Return(int64(55), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "reception")

		var got resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(int64(55), got.BookingID)
	})

	s.Run("error: 422 with the API field errors", func() {
		err := rejected("Validation failed", map[string]string{"client_phone": "Invalid phone"})
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), calendarID, deskMember, gomock.Any()).Return(int64(0), err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(rec.Body.String(), `"client_phone":"Invalid phone"`)
	})
}

// ================================================================================
// TestEditBooking
// ================================================================================

func (s *CalendarHandlerTestSuite) TestEditBooking() {
	url := "/calendar/" + calendarID + "/events/7"
	reqBody := map[string]any{
		"service_id":   2,
		"barber_id":    4,
		"date":         "2025-11-30",
		"time":         "15:30",
		"client_name":  "Giorgi Giorgadze",
		"client_phone": "555 010 203",
		"notes":        "beard only",
		"status":       "confirmed",
	}

	s.Run("success: edited booking returns the view", func() {
		want := shared.AdminBooking{
			ServiceID: 2, BarberID: 4, Date: "2025-11-30", Time: "15:30",
			ClientName: "Giorgi Giorgadze", ClientPhone: "555 010 203",
			Notes: "beard only", Status: calendar.StatusConfirmed,
		}
		s.mockCommands.EXPECT().EditBooking(gomock.Any(), calendarID, deskMember, int64(7), want).Return(nil).Times(1)
		s.expectView(deskMember)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "reception")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 with the API field errors", func() {
		err := rejected("Validation failed", map[string]string{"booking_time": "Not a valid time"})
		s.mockCommands.EXPECT().EditBooking(gomock.Any(), calendarID, deskMember, int64(7), gomock.Any()).Return(err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "reception")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(rec.Body.String(), `"booking_time":"Not a valid time"`)
	})

	s.Run("error: 409 while another change is pending", func() {
		s.mockCommands.EXPECT().EditBooking(gomock.Any(), calendarID, deskMember, int64(7), gomock.Any()).Return(calendar.ErrEditInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "reception")

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 400 without the required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"client_name": "Nino"}, "reception")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 403 for a barber", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "barber")

		s.Equal(http.StatusForbidden, rec.Code)
	})
}

// ================================================================================
// TestDateClick / TestEventDetails
// ================================================================================

func (s *CalendarHandlerTestSuite) TestDateClick() {
	s.Run("success: month cell drills into the day", func() {
		action := calendar.DateClickAction{Kind: calendar.ClickSwitchToDay, View: calendar.ViewDay, Date: "2025-11-29"}
		s.mockCommands.EXPECT().DateClick(gomock.Any(), calendarID, barberMember, slot(0, 0), true).Return(action, nil).Times(1)

		body := map[string]any{"at": "2025-11-29T00:00:00Z", "all_day": true}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar/"+calendarID+"/date-click", body, "barber")

		var got resdto.DateClickResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(resdto.DateClickResponse{Action: "switch_to_day", View: "timeGridDay", Date: "2025-11-29"}, got)
	})
}

func (s *CalendarHandlerTestSuite) TestEventDetails() {
	s.Run("success: barber may read details", func() {
		s.mockQueries.EXPECT().EventDetails(gomock.Any(), calendarID, barberMember, int64(7)).
			Return(&queries.EventDetailsView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/"+calendarID+"/events/7", nil, "barber")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for another member's session", func() {
		s.mockQueries.EXPECT().EventDetails(gomock.Any(), calendarID, barberMember, int64(7)).
			Return(nil, errs.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/"+calendarID+"/events/7", nil, "barber")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session not found")
	})
}

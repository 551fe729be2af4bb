package api

import (
	"net/http"

	"barberflow/internal/domain/wizard"
	reqdto "barberflow/internal/handler/dto/request"
	resdto "barberflow/internal/handler/dto/response"
	"barberflow/internal/handler/httperr"
	"barberflow/internal/pkg/config"
	"barberflow/internal/pkg/cookie"
	"barberflow/internal/pkg/errs"
	"barberflow/internal/usecase/commands"
	"barberflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidTime = errs.New("invalid time")

type WizardHandler struct {
	cmds      commands.WizardCommands
	q         queries.WizardQueries
	cookieCfg config.CookieConfig
	cfg       config.SessionConfig
}

func NewWizardHandler(cmds commands.WizardCommands, q queries.WizardQueries, cfg config.Config) *WizardHandler {
	return &WizardHandler{cmds: cmds, q: q, cookieCfg: cfg.Cookie, cfg: cfg.Session}
}

// @Summary Start booking
// @Description Load the catalog and open a new booking wizard session
// @Tags wizard
// @Produce json
// @Success 201 {object} queries.WizardView
// @Failure 502 {object} httperr.Response
// @Router /api/wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	id, err := h.cmds.Start(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	cookie.SetWizardSession(c, h.cookieCfg, id, h.cfg.TTL)
	h.respond(c, http.StatusCreated, id)
}

// @Summary Resume booking
// @Description Return the wizard session remembered in the wizard_session cookie
// @Tags wizard
// @Produce json
// @Success 200 {object} queries.WizardView
// @Failure 404 {object} httperr.Response
// @Router /api/wizard [get]
func (h *WizardHandler) Resume(c *gin.Context) {
	id := cookie.GetWizardSession(c)
	if id == "" {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrSessionNotFound, "Session not found", nil)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrSessionNotFound) {
			cookie.ClearWizardSession(c, h.cookieCfg)
		}
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get booking wizard
// @Tags wizard
// @Produce json
// @Param id path string true "Wizard session ID"
// @Success 200 {object} queries.WizardView
// @Failure 404 {object} httperr.Response
// @Router /api/wizard/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	h.respond(c, http.StatusOK, c.Param("id"))
}

// @Summary Select service
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.SelectServiceRequest true "Service"
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/{id}/service [post]
func (h *WizardHandler) SelectService(c *gin.Context) {
	var req reqdto.SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, h.cmds.SelectService(c.Request.Context(), c.Param("id"), req.ServiceID))
}

// @Summary Select barber
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.SelectBarberRequest true "Barber"
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/{id}/barber [post]
func (h *WizardHandler) SelectBarber(c *gin.Context) {
	var req reqdto.SelectBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, h.cmds.SelectBarber(c.Request.Context(), c.Param("id"), req.BarberID))
}

// @Summary Change displayed month
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.ChangeMonthRequest true "Month delta"
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Router /api/wizard/{id}/month [post]
func (h *WizardHandler) ChangeMonth(c *gin.Context) {
	var req reqdto.ChangeMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, h.cmds.ChangeMonth(c.Request.Context(), c.Param("id"), req.Delta))
}

// @Summary Select date
// @Description Select a date and load its free slots
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.SelectDateRequest true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/{id}/date [post]
func (h *WizardHandler) SelectDate(c *gin.Context) {
	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, h.cmds.SelectDate(c.Request.Context(), c.Param("id"), req.Date))
}

// @Summary Select time
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.SelectTimeRequest true "Time (HH:MM)"
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/{id}/time [post]
func (h *WizardHandler) SelectTime(c *gin.Context) {
	var req reqdto.SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	if !wizard.IsClock(req.Time) {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidTime, "Time must be HH:MM", nil)
		return
	}
	h.apply(c, h.cmds.SelectTime(c.Request.Context(), c.Param("id"), req.Time))
}

// @Summary Go to step
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.GoToStepRequest true "Step (1-5)"
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/{id}/step [post]
func (h *WizardHandler) GoToStep(c *gin.Context) {
	var req reqdto.GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, h.cmds.GoToStep(c.Request.Context(), c.Param("id"), req.ToDomain()))
}

// @Summary Next step
// @Tags wizard
// @Produce json
// @Param id path string true "Wizard session ID"
// @Success 200 {object} queries.WizardView
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	h.apply(c, h.cmds.Next(c.Request.Context(), c.Param("id")))
}

// @Summary Look up returning client
// @Description Prefill the contact form for a known phone number
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.LookupClientRequest true "Phone"
// @Success 200 {object} resdto.ClientLookupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/wizard/{id}/lookup [post]
func (h *WizardHandler) LookupClient(c *gin.Context) {
	var req reqdto.LookupClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	profile, err := h.cmds.LookupClient(c.Request.Context(), c.Param("id"), req.Phone)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientProfile(profile))
}

// @Summary Confirm contact details
// @Description Validate the contact form and move to the confirmation step
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body reqdto.ContactRequest true "Contact"
// @Success 200 {object} queries.WizardView
// @Failure 422 {object} httperr.Response
// @Router /api/wizard/{id}/contact [post]
func (h *WizardHandler) ConfirmContact(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	h.apply(c, h.cmds.ConfirmContact(c.Request.Context(), c.Param("id"), in))
}

// @Summary Submit booking
// @Tags wizard
// @Produce json
// @Param id path string true "Wizard session ID"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	result, err := h.cmds.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	cookie.ClearWizardSession(c, h.cookieCfg)
	c.Header("Location", result.RedirectURL)
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// apply answers a transition with the updated wizard.
func (h *WizardHandler) apply(c *gin.Context, err error) {
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	h.respond(c, http.StatusOK, c.Param("id"))
}

func (h *WizardHandler) respond(c *gin.Context, status int, id string) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(status, view)
}

package api

import (
	"net/http"
	"strconv"

	"bookingmx/internal/domain/reservation"
	reqdto "bookingmx/internal/handler/dto/request"
	resdto "bookingmx/internal/handler/dto/response"
	"bookingmx/internal/handler/httperr"
	"bookingmx/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service usecase.ReservationService
}

func NewReservationHandler(service usecase.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// @Summary List reservations
// @Description List every reservation, canceled ones included, ordered by id
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	h.respondList(c, items)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Create reservation
// @Description Create an ACTIVE reservation. Check-in may be today and may equal check-out.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	c.Header("Location", c.FullPath()+"/"+strconv.FormatInt(res.ID(), 10))
	h.respond(c, http.StatusCreated, res)
}

// @Summary Update reservation
// @Description Overwrite names and dates of an ACTIVE reservation. Both dates must be after today and check-out after check-in.
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindRequest(c)
	if !ok {
		return
	}
	res, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, res)
}

// @Summary Cancel reservation
// @Description Mark an ACTIVE reservation as CANCELED. The record is kept.
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithServiceError(c, err)
		return
	}
	h.respond(c, http.StatusOK, res)
}

func (h *ReservationHandler) respond(c *gin.Context, status int, res *reservation.Reservation) {
	body, err := resdto.FromReservation(res)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(status, body)
}

func (h *ReservationHandler) respondList(c *gin.Context, items []*reservation.Reservation) {
	body, err := resdto.FromReservations(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, body)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func bindRequest(c *gin.Context) (usecase.ReservationRequest, bool) {
	var body reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return usecase.ReservationRequest{}, false
	}
	req, err := body.ToUsecase()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return usecase.ReservationRequest{}, false
	}
	return req, true
}

package api

import (
	"bytes"
	"io"
	"net/http"

	reqdto "restro-ledger/internal/handler/dto/request"
	resdto "restro-ledger/internal/handler/dto/response"
	"restro-ledger/internal/handler/httperr"
	"restro-ledger/internal/pkg/errs"
	"restro-ledger/internal/usecase/commands"
	"restro-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	exportFilename       = "reservations.xlsx"
	xlsxContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type LedgerExporter interface {
	Export(w io.Writer, view *queries.LedgerView) error
}

type LedgerHandler struct {
	cmds              commands.LedgerCommands
	q                 queries.LedgerQueries
	exporter          LedgerExporter
	lowSeatsThreshold int
}

func NewLedgerHandler(
	cmds commands.LedgerCommands,
	q queries.LedgerQueries,
	exporter LedgerExporter,
	lowSeatsThreshold int,
) *LedgerHandler {
	return &LedgerHandler{
		cmds:              cmds,
		q:                 q,
		exporter:          exporter,
		lowSeatsThreshold: lowSeatsThreshold,
	}
}

// @Summary Create reservation
// @Description Reserve seats for a named party. An optional Idempotency-Key makes retries safe.
// @Tags reservations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID identifying this reserve attempt"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed result for a repeated Idempotency-Key"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "Capacity, duplicate name, or Idempotency-Key conflict (including a replayed key whose reservation was deleted)"
// @Router /reservations [post]
func (h *LedgerHandler) CreateReservation(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key format", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToCommand(), idempotencyKey)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	response, err := resdto.FromReservationView(result.Reservation)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Header("Location", "/api/reservations/"+response.ID.String())
	if result.IsReplayed {
		c.JSON(http.StatusOK, response)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *LedgerHandler) GetReservation(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	h.respondReservation(c, view)
}

// @Summary Check out reservation
// @Description Mark the party as departed and release its seats. Repeating the call changes nothing.
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/checkout [post]
func (h *LedgerHandler) Checkout(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	view, err := h.cmds.Checkout(c.Request.Context(), id)
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	h.respondReservation(c, view)
}

// @Summary Delete reservation
// @Description Remove a reservation. Seats are released only if it was not checked out.
// @Tags reservations
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *LedgerHandler) Delete(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get ledger state
// @Description Seat capacity and every listed reservation, newest first
// @Tags ledger
// @Produce json
// @Success 200 {object} resdto.LedgerStateResponse
// @Router /ledger [get]
func (h *LedgerHandler) GetState(c *gin.Context) {
	view, err := h.q.State(c.Request.Context())
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	response, err := resdto.FromLedgerView(view, h.lowSeatsThreshold)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Export reservations
// @Description Download the reservation table as an xlsx workbook
// @Tags ledger
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /ledger/export [get]
func (h *LedgerHandler) Export(c *gin.Context) {
	view, err := h.q.State(c.Request.Context())
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(&buf, view); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to export reservations", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *LedgerHandler) respondReservation(c *gin.Context, view *queries.ReservationView) {
	response, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, response)
}

func abortWithLedgerError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidReservation):
		httperr.AbortWithCode(c, http.StatusBadRequest, httperr.CodeInvalidReservation, err, "Invalid reservation", invalidReservationDetail(err))
	case errs.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, httperr.CodeNotFound, err, "Reservation not found", nil)
	case errs.Is(err, commands.ErrCapacityExceeded):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeCapacityExceeded, err, "Not enough seats available", nil)
	case errs.Is(err, commands.ErrDuplicateName):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeDuplicateName, err, "A reservation with this name already exists", nil)
	case errs.Is(err, commands.ErrIdempotencyKeyReused):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeIdempotencyConflict, err, "Idempotency-Key was used with a different request", nil)
	case errs.Is(err, commands.ErrIdempotentResultGone):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeIdempotencyConflict, err, "Reservation for this Idempotency-Key no longer exists", nil)
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithCode(c, http.StatusConflict, httperr.CodeIdempotencyConflict, err, "Reservation request is currently being processed", nil)
	default:
		httperr.AbortWithCode(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
	}
}

// invalidReservationDetail names the rule that failed without the wrap chain.
func invalidReservationDetail(err error) any {
	for _, rule := range []error{commands.ErrInvalidName, commands.ErrInvalidPhone, commands.ErrInvalidGuestCount} {
		if errs.Is(err, rule) {
			return rule.Error()
		}
	}
	return nil
}

func parseReservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// getIdempotencyKey returns nil when the header is absent.
func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader(idempotencyKeyHeader)
	if keyStr == "" {
		return nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, errs.Wrap(err, "invalid idempotency key format")
	}
	return &key, nil
}

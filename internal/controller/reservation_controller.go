package controller

import (
	"net/http"
	"strconv"

	"github.com/dpletzke/LightBnB/internal/service"
)

type ReservationController struct {
	svc *service.ReservationService
}

func NewReservationController(svc *service.ReservationService) *ReservationController {
	return &ReservationController{svc: svc}
}

// GET /api/v1/guests/{guestID}/reservations
func (c *ReservationController) ListForGuest(w http.ResponseWriter, r *http.Request, guestIDStr string) {
	ctx := r.Context()
	guestID, err := strconv.ParseInt(guestIDStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid guest id"})
		return
	}
	list, err := c.svc.ListForGuest(ctx, guestID, parseLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse[any]{Data: list})
}

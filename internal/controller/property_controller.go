package controller

import (
	"encoding/json"
	"net/http"

	"github.com/dpletzke/LightBnB/internal/model"
	"github.com/dpletzke/LightBnB/internal/service"
)

type PropertyController struct {
	svc *service.PropertyService
}

func NewPropertyController(svc *service.PropertyService) *PropertyController {
	return &PropertyController{svc: svc}
}

// GET /api/v1/properties
func (c *PropertyController) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f, err := parseSearchFilters(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}
	list, err := c.svc.Search(ctx, f, parseLimit(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse[any]{Data: list})
}

// POST /api/v1/properties
func (c *PropertyController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var req model.Property
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid json"})
		return
	}
	if err := c.svc.Create(ctx, &req); err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse[any]{Data: req})
}

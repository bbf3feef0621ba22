package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dpletzke/LightBnB/internal/service"
)

type UserController struct {
	svc *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{svc: svc}
}

// GET /api/v1/users/{id}
func (c *UserController) Get(w http.ResponseWriter, r *http.Request, idStr string) {
	ctx := r.Context()
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid id"})
		return
	}
	u, err := c.svc.GetByID(ctx, id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}
	if u == nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: "not found"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse[any]{Data: u})
}

// GET /api/v1/users?email=
func (c *UserController) GetByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "email required"})
		return
	}
	u, err := c.svc.GetByEmail(ctx, email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}
	if u == nil {
		writeJSON(w, http.StatusNotFound, apiError{Error: "not found"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse[any]{Data: u})
}

// POST /api/v1/users
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid json"})
		return
	}
	u, err := c.svc.Create(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, apiResponse[any]{Data: u})
}

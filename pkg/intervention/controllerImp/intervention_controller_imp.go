package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arboria/entities"
	"arboria/pkg/apperr"
	"arboria/pkg/intervention/service"
)

type InterventionCtrl struct{ svc service.InterventionService }

func New(svc service.InterventionService) *InterventionCtrl { return &InterventionCtrl{svc} }

type createReq struct {
	TreeID string `json:"tree_id"`
	Type   string `json:"type"`
	Notes  string `json:"notes"`
	Date   string `json:"date"`
}

func (h *InterventionCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	iv := &entities.Intervention{TreeID: req.TreeID, Type: req.Type, Notes: req.Notes, Date: req.Date}
	out, err := h.svc.Create(iv)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *InterventionCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.QueryParam("tree_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Intervention{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InterventionCtrl) Get(c echo.Context) error {
	out, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InterventionCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "intervention deleted"})
}

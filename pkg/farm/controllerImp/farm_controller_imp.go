package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arboria/entities"
	"arboria/pkg/apperr"
	"arboria/pkg/farm/service"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) *FarmCtrl { return &FarmCtrl{svc} }

type createReq struct {
	Name        string              `json:"name"`
	GPSCoords   *entities.GPSCoords `json:"gps_coords"`
	GridRows    int                 `json:"grid_rows"`
	GridCols    int                 `json:"grid_cols"`
	Description string              `json:"description"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f := &entities.Farm{Name: req.Name, GPSCoords: req.GPSCoords, GridRows: req.GridRows, GridCols: req.GridCols, Description: req.Description}
	out, err := h.svc.Create(f)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FarmCtrl) List(c echo.Context) error {
	out, err := h.svc.List()
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	out, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Update(c echo.Context) error {
	var p service.FarmPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.UpdatePartial(c.Param("id"), p)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "farm and associated trees deleted"})
}

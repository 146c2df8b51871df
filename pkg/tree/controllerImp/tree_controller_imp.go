package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"arboria/entities"
	"arboria/pkg/apperr"
	"arboria/pkg/tree/service"
)

type TreeCtrl struct{ svc service.TreeService }

func New(svc service.TreeService) *TreeCtrl { return &TreeCtrl{svc} }

type createReq struct {
	FarmID    string              `json:"farm_id"`
	Position  string              `json:"position"`
	Species   string              `json:"species"`
	Variety   string              `json:"variety"`
	PlantDate string              `json:"plant_date"`
	Health    string              `json:"health"`
	Notes     string              `json:"notes"`
	Photo     string              `json:"photo"`
	Photos    []string            `json:"photos"`
	GPSCoords *entities.GPSCoords `json:"gps_coords"`
	Synced    *bool               `json:"synced"`
	Origin    string              `json:"origin"`
}

func (h *TreeCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	synced := true
	if req.Synced != nil {
		synced = *req.Synced
	}
	t := &entities.Tree{
		FarmID: req.FarmID, Position: req.Position, Species: req.Species,
		Variety: req.Variety, PlantDate: req.PlantDate, Health: req.Health,
		Notes: req.Notes, Photo: req.Photo, Photos: req.Photos,
		GPSCoords: req.GPSCoords, Synced: synced, Origin: req.Origin,
	}
	out, err := h.svc.Create(t)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *TreeCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.QueryParam("farm_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TreeCtrl) Get(c echo.Context) error {
	out, err := h.svc.Get(c.Param("id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TreeCtrl) Update(c echo.Context) error {
	var p service.TreePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.UpdatePartial(c.Param("id"), p)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TreeCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "tree deleted"})
}

type duplicateReq struct {
	SourceTreeID   string `json:"source_tree_id"`
	TargetPosition string `json:"target_position"`
	TargetFarmID   string `json:"target_farm_id"`
}

func (h *TreeCtrl) Duplicate(c echo.Context) error {
	var req duplicateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.svc.Duplicate(req.SourceTreeID, req.TargetPosition, req.TargetFarmID)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *TreeCtrl) Search(c echo.Context) error {
	out, err := h.svc.Search(service.SearchQuery{
		FarmID:  c.QueryParam("farm_id"),
		Query:   c.QueryParam("query"),
		Health:  c.QueryParam("health"),
		Species: c.QueryParam("species"),
	})
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	if out == nil {
		out = []entities.Tree{}
	}
	return c.JSON(http.StatusOK, out)
}

type photoReq struct {
	Photo string `json:"photo"`
}

func (h *TreeCtrl) AddPhoto(c echo.Context) error {
	var req photoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	n, err := h.svc.AddPhoto(c.Param("id"), req.Photo)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "photo added", "photo_count": n})
}

func (h *TreeCtrl) RemovePhoto(c echo.Context) error {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid photo index"})
	}
	n, err := h.svc.RemovePhoto(c.Param("id"), idx)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "photo deleted", "photo_count": n})
}

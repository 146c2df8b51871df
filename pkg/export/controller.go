package export

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arboria/pkg/apperr"
)

type Ctrl struct{ svc *Service }

func NewCtrl(svc *Service) *Ctrl { return &Ctrl{svc} }

func (h *Ctrl) Export(c echo.Context) error {
	snap, err := h.svc.Export(c.QueryParam("farm_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Ctrl) Import(c echo.Context) error {
	var snap Snapshot
	if err := c.Bind(&snap); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	sum := h.svc.Import(&snap)
	return c.JSON(http.StatusOK, map[string]any{"message": "import finished", "imported": sum})
}

func (h *Ctrl) ExportXLSX(c echo.Context) error {
	snap, err := h.svc.Export(c.QueryParam("farm_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	x, err := WorkbookXLSX(snap)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="arboria_export.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return x.Write(c.Response())
}

package syncer

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Ctrl struct{ rec *Reconciler }

func NewCtrl(rec *Reconciler) *Ctrl { return &Ctrl{rec} }

type syncReq struct {
	Trees []Record `json:"trees"`
}

func (h *Ctrl) Sync(c echo.Context) error {
	var req syncReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return c.JSON(http.StatusOK, h.rec.Reconcile(req.Trees))
}

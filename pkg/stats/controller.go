package stats

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arboria/pkg/apperr"
)

type Ctrl struct{ agg *Aggregator }

func NewCtrl(agg *Aggregator) *Ctrl { return &Ctrl{agg} }

func (h *Ctrl) Statistics(c echo.Context) error {
	out, err := h.agg.Statistics(c.Param("farm_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

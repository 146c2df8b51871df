package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"arboria/pkg/apperr"
)

type Ctrl struct{ svc *Service }

func NewCtrl(svc *Service) *Ctrl { return &Ctrl{svc} }

type credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *Ctrl) Register(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.svc.Register(req.Phone, req.Password)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": u.ID, "phone": u.Phone, "message": "registration successful"})
}

func (h *Ctrl) Login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, tok, err := h.svc.Login(req.Phone, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": u.ID, "phone": u.Phone, "token": tok, "message": "login successful"})
}

func (h *Ctrl) Demo(c echo.Context) error {
	u, tok, err := h.svc.DemoLogin()
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"id": u.ID, "phone": u.Phone, "is_demo": true, "token": tok, "message": "demo login successful"})
}

func (h *Ctrl) WhoAmI(c echo.Context) error {
	v := c.Get("uid")
	uid, _ := v.(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}

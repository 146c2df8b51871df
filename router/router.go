package router

import (
	"github.com/labstack/echo/v4"

	"arboria/pkg/metrics"
	"arboria/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	farmCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	treeCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		Duplicate(echo.Context) error
		Search(echo.Context) error
		AddPhoto(echo.Context) error
		RemovePhoto(echo.Context) error
	},
	interCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
	},
	syncCtrl interface{ Sync(echo.Context) error },
	statsCtrl interface{ Statistics(echo.Context) error },
	exportCtrl interface {
		Export(echo.Context) error
		Import(echo.Context) error
		ExportXLSX(echo.Context) error
	},
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Demo(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Bearer(jwtSecret))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "ArborIA API", "version": "2.0.0"})
	})
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/auth/demo", authCtrl.Demo)
	api.GET("/whoami", authCtrl.WhoAmI)

	api.POST("/farms", farmCtrl.Create)
	api.GET("/farms", farmCtrl.List)
	api.GET("/farms/:id", farmCtrl.Get)
	api.PUT("/farms/:id", farmCtrl.Update)
	api.DELETE("/farms/:id", farmCtrl.Delete)

	api.POST("/trees", treeCtrl.Create)
	api.GET("/trees", treeCtrl.List)
	api.POST("/trees/duplicate", treeCtrl.Duplicate)
	api.POST("/trees/sync", syncCtrl.Sync)
	api.GET("/trees/:id", treeCtrl.Get)
	api.PUT("/trees/:id", treeCtrl.Update)
	api.DELETE("/trees/:id", treeCtrl.Delete)
	api.POST("/trees/:id/photos", treeCtrl.AddPhoto)
	api.DELETE("/trees/:id/photos/:index", treeCtrl.RemovePhoto)

	api.GET("/search", treeCtrl.Search)

	api.POST("/interventions", interCtrl.Create)
	api.GET("/interventions", interCtrl.List)
	api.GET("/interventions/:id", interCtrl.Get)
	api.DELETE("/interventions/:id", interCtrl.Delete)

	api.GET("/statistics/:farm_id", statsCtrl.Statistics)

	api.GET("/export", exportCtrl.Export)
	api.GET("/export/xlsx", exportCtrl.ExportXLSX)
	api.POST("/import", exportCtrl.Import)

	return e
}

package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"arboria/config"
	"arboria/database"
	"arboria/router"

	"arboria/pkg/auth"
	"arboria/pkg/export"
	"arboria/pkg/stats"
	"arboria/pkg/syncer"

	farmCtrlImp "arboria/pkg/farm/controllerImp"
	farmRepoImp "arboria/pkg/farm/repositoryImp"
	farmSvcImp "arboria/pkg/farm/serviceImp"

	treeCtrlImp "arboria/pkg/tree/controllerImp"
	treeRepoImp "arboria/pkg/tree/repositoryImp"
	treeSvcImp "arboria/pkg/tree/serviceImp"

	interCtrlImp "arboria/pkg/intervention/controllerImp"
	interRepoImp "arboria/pkg/intervention/repositoryImp"
	interSvcImp "arboria/pkg/intervention/serviceImp"

	healthCtrlImp "arboria/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 4) Repos
	fRepo := farmRepoImp.New(db)
	tRepo := treeRepoImp.New(db)
	iRepo := interRepoImp.New(db)

	// 5) Services
	fSvc := farmSvcImp.New(fRepo)
	tSvc := treeSvcImp.New(tRepo)
	iSvc := interSvcImp.New(iRepo, tRepo)
	reconciler := syncer.New(tRepo)
	aggregator := stats.New(tRepo, iRepo)
	exporter := export.New(fRepo, tRepo, iRepo)
	authSvc := auth.New(db, cfg.JWTSecret)

	// 6) Controllers
	fCtrl := farmCtrlImp.New(fSvc)
	tCtrl := treeCtrlImp.New(tSvc)
	iCtrl := interCtrlImp.New(iSvc)
	syCtrl := syncer.NewCtrl(reconciler)
	stCtrl := stats.NewCtrl(aggregator)
	exCtrl := export.NewCtrl(exporter)
	auCtrl := auth.NewCtrl(authSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, cfg.JWTSecret, fCtrl, tCtrl, iCtrl, syCtrl, stCtrl, exCtrl, auCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

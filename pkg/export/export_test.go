package export

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"arboria/entities"
	farmRepoImp "arboria/pkg/farm/repositoryImp"
	interRepoImp "arboria/pkg/intervention/repositoryImp"
	treeRepoImp "arboria/pkg/tree/repositoryImp"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.Farm{}, &entities.Tree{}, &entities.Intervention{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newService(t *testing.T) (*Service, *gorm.DB) {
	db := testDB(t)
	return New(farmRepoImp.New(db), treeRepoImp.New(db), interRepoImp.New(db)), db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	db.Create(&entities.Farm{ID: "f1", Name: "Orchard-1", GridRows: 5, GridCols: 5})
	db.Create(&entities.Farm{ID: "f2", Name: "Orchard-2", GridRows: 20, GridCols: 20})
	db.Create(&entities.Tree{ID: "t1", FarmID: "f1", Position: "A1", Species: "Olive", Photos: []string{}})
	db.Create(&entities.Tree{ID: "t2", FarmID: "f2", Position: "A1", Species: "Fig", Photos: []string{}})
	db.Create(&entities.Intervention{ID: "iv1", TreeID: "t1", Type: "watering", Date: "2026-08-01"})
	db.Create(&entities.Intervention{ID: "iv2", TreeID: "t2", Type: "harvest", Date: "2026-08-02"})
}

func TestExportAll(t *testing.T) {
	svc, db := newService(t)
	seed(t, db)

	snap, err := svc.Export("")
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Farms) != 2 || len(snap.Trees) != 2 || len(snap.Interventions) != 2 {
		t.Fatalf("snapshot sizes wrong: %d/%d/%d", len(snap.Farms), len(snap.Trees), len(snap.Interventions))
	}
	if snap.ExportDate == "" {
		t.Fatal("export date missing")
	}
}

func TestExportSingleFarmScopesSubtree(t *testing.T) {
	svc, db := newService(t)
	seed(t, db)

	snap, err := svc.Export("f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Farms) != 1 || snap.Farms[0].ID != "f1" {
		t.Fatalf("farms = %+v", snap.Farms)
	}
	if len(snap.Trees) != 1 || snap.Trees[0].ID != "t1" {
		t.Fatalf("trees = %+v", snap.Trees)
	}
	if len(snap.Interventions) != 1 || snap.Interventions[0].ID != "iv1" {
		t.Fatalf("interventions = %+v", snap.Interventions)
	}
}

func TestImportRoundTrip(t *testing.T) {
	src, srcDB := newService(t)
	seed(t, srcDB)
	snap, err := src.Export("")
	if err != nil {
		t.Fatal(err)
	}

	dst, dstDB := newService(t)
	sum := dst.Import(snap)
	if sum.Farms != 2 || sum.Trees != 2 || sum.Interventions != 2 || sum.Skipped != 0 {
		t.Fatalf("import summary wrong: %+v", sum)
	}

	var trees []entities.Tree
	dstDB.Find(&trees)
	for _, tr := range trees {
		if tr.ID == "t1" || tr.ID == "t2" {
			t.Fatal("import must mint fresh identities")
		}
	}
}

func TestImportSkipsConflictingRows(t *testing.T) {
	svc, db := newService(t)
	db.Create(&entities.Tree{ID: "t1", FarmID: "f1", Position: "A1", Species: "Olive", Photos: []string{}})

	sum := svc.Import(&Snapshot{Trees: []entities.Tree{
		{FarmID: "f1", Position: "A1", Species: "Fig"},  // occupied
		{FarmID: "f1", Position: "A2", Species: "Plum"}, // free
	}})
	if sum.Trees != 1 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestWorkbookXLSX(t *testing.T) {
	svc, db := newService(t)
	seed(t, db)
	snap, _ := svc.Export("")

	x, err := WorkbookXLSX(snap)
	if err != nil {
		t.Fatal(err)
	}
	for _, sheet := range []string{"Farms", "Trees", "Interventions"} {
		if idx, _ := x.GetSheetIndex(sheet); idx < 0 {
			t.Fatalf("missing sheet %s", sheet)
		}
	}
	got, err := x.GetCellValue("Trees", "C2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "A1" {
		t.Fatalf("Trees!C2 = %q, want A1", got)
	}
}

package syncer

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/apperr"
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

func strp(s string) *string { return &s }

func checkInvariant(t *testing.T, res Result, batchLen int) {
	t.Helper()
	if res.SyncedCount+res.ErrorCount != batchLen {
		t.Fatalf("synced %d + errors %d != batch %d", res.SyncedCount, res.ErrorCount, batchLen)
	}
	if len(res.SyncedTrees) != res.SyncedCount || len(res.Errors) != res.ErrorCount {
		t.Fatalf("counts disagree with slices: %+v", res)
	}
}

func TestReconcileInsertsNewRecords(t *testing.T) {
	db := testDB(t)
	r := New(treeRepoImp.New(db))

	res := r.Reconcile([]Record{
		{FarmID: strp("f"), Position: strp("A1"), Species: strp("Olive")},
		{FarmID: strp("f"), Position: strp("A2"), Species: strp("Fig")},
	})
	checkInvariant(t, res, 2)
	if res.SyncedCount != 2 {
		t.Fatalf("synced = %d, want 2: %+v", res.SyncedCount, res.Errors)
	}
	for _, tr := range res.SyncedTrees {
		if tr.ID == "" {
			t.Fatal("insert should carry a generated identity")
		}
		if !tr.Synced {
			t.Fatal("insert should be forced synced")
		}
	}
}

func TestReconcileFirstWriterWinsWithinBatch(t *testing.T) {
	db := testDB(t)
	r := New(treeRepoImp.New(db))

	res := r.Reconcile([]Record{
		{FarmID: strp("f"), Position: strp("B2"), Species: strp("Olive")},
		{FarmID: strp("f"), Position: strp("B2"), Species: strp("Fig")},
	})
	checkInvariant(t, res, 2)
	if res.SyncedCount != 1 || res.ErrorCount != 1 {
		t.Fatalf("want 1 synced / 1 error, got %d / %d", res.SyncedCount, res.ErrorCount)
	}
	if res.SyncedTrees[0].Species != "Olive" {
		t.Fatalf("first record in order should win, got %q", res.SyncedTrees[0].Species)
	}
	if res.Errors[0].Kind != string(apperr.PositionConflict) {
		t.Fatalf("loser should fail with a position error, got %+v", res.Errors[0])
	}
	if res.Errors[0].Record == nil || *res.Errors[0].Record.Species != "Fig" {
		t.Fatal("insert failure should carry the offending record for retry")
	}

	var n int64
	db.Model(&entities.Tree{}).Where("farm_id = ? AND position = ?", "f", "B2").Count(&n)
	if n != 1 {
		t.Fatalf("store holds %d trees at B2, want 1", n)
	}
}

func TestReconcileUpdatesExistingRecord(t *testing.T) {
	db := testDB(t)
	repo := treeRepoImp.New(db)
	r := New(repo)

	seed := &entities.Tree{ID: "t1", FarmID: "f", Position: "A1", Species: "Olive", Health: "good", Notes: "keep me", Photos: []string{}, Synced: false}
	if err := repo.Create(seed); err != nil {
		t.Fatal(err)
	}

	res := r.Reconcile([]Record{{ID: "t1", Health: strp("poor")}})
	checkInvariant(t, res, 1)
	if res.ErrorCount != 0 {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}

	got, err := repo.FindByID("t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Health != "poor" {
		t.Fatalf("health = %q, want poor", got.Health)
	}
	if got.Notes != "keep me" || got.Species != "Olive" {
		t.Fatalf("omitted fields were clobbered: %+v", got)
	}
	if !got.Synced {
		t.Fatal("update should force synced true")
	}
	if res.SyncedTrees[0].ID != "t1" {
		t.Fatal("update should preserve the record identity")
	}
}

func TestReconcileUpdateOfMissingIdentityErrors(t *testing.T) {
	db := testDB(t)
	r := New(treeRepoImp.New(db))

	res := r.Reconcile([]Record{{ID: "ghost", Health: strp("poor")}})
	checkInvariant(t, res, 1)
	if res.ErrorCount != 1 {
		t.Fatalf("want 1 error, got %+v", res)
	}
	if res.Errors[0].Kind != string(apperr.RecordNotFound) {
		t.Fatalf("kind = %q, want record_not_found", res.Errors[0].Kind)
	}
	if res.Errors[0].TreeID != "ghost" {
		t.Fatal("error should identify the missing record")
	}

	// the record must not have been silently converted to an insert
	var n int64
	db.Model(&entities.Tree{}).Count(&n)
	if n != 0 {
		t.Fatalf("ghost update created %d trees", n)
	}
}

func TestReconcileMixedBatchIsolatesFailures(t *testing.T) {
	db := testDB(t)
	repo := treeRepoImp.New(db)
	r := New(repo)
	repo.Create(&entities.Tree{ID: "t1", FarmID: "f", Position: "A1", Species: "Olive", Photos: []string{}})

	res := r.Reconcile([]Record{
		{ID: "t1", Notes: strp("updated offline")},         // ok: update
		{ID: "nope", Notes: strp("lost")},                  // error: unknown id
		{FarmID: strp("f"), Position: strp("A1")},          // error: occupied
		{FarmID: strp("f"), Position: strp("A2")},          // ok: insert
		{Species: strp("Fig")},                             // error: no farm/position
	})
	checkInvariant(t, res, 5)
	if res.SyncedCount != 2 || res.ErrorCount != 3 {
		t.Fatalf("want 2/3, got %d/%d: %+v", res.SyncedCount, res.ErrorCount, res.Errors)
	}
	kinds := map[string]int{}
	for _, e := range res.Errors {
		kinds[e.Kind]++
	}
	if kinds[string(apperr.RecordNotFound)] != 1 || kinds[string(apperr.PositionConflict)] != 1 || kinds[string(apperr.Validation)] != 1 {
		t.Fatalf("error kinds wrong: %v", kinds)
	}
}

func TestReconcileUpdatesAreIdempotent(t *testing.T) {
	db := testDB(t)
	repo := treeRepoImp.New(db)
	r := New(repo)
	repo.Create(&entities.Tree{ID: "t1", FarmID: "f", Position: "A1", Species: "Olive", Photos: []string{}})

	batch := []Record{{ID: "t1", Health: strp("fair"), Notes: strp("checked")}}
	first := r.Reconcile(batch)
	second := r.Reconcile(batch)
	checkInvariant(t, first, 1)
	checkInvariant(t, second, 1)

	got, _ := repo.FindByID("t1")
	if got.Health != "fair" || got.Notes != "checked" {
		t.Fatalf("second pass changed values: %+v", got)
	}
	var n int64
	db.Model(&entities.Tree{}).Count(&n)
	if n != 1 {
		t.Fatalf("idempotent update duplicated rows: %d", n)
	}
}

func TestReconcilePhotosUpdateRederivesPrimary(t *testing.T) {
	db := testDB(t)
	repo := treeRepoImp.New(db)
	r := New(repo)
	repo.Create(&entities.Tree{ID: "t1", FarmID: "f", Position: "A1", Photos: []string{"old"}, Photo: "old"})

	photos := []string{"p1", "p2"}
	res := r.Reconcile([]Record{{ID: "t1", Photos: &photos}})
	checkInvariant(t, res, 1)
	if res.ErrorCount != 0 {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	got, _ := repo.FindByID("t1")
	if len(got.Photos) != 2 || got.Photo != "p2" {
		t.Fatalf("photos = %v primary = %q", got.Photos, got.Photo)
	}
}

func TestReconcileEmptyBatch(t *testing.T) {
	db := testDB(t)
	r := New(treeRepoImp.New(db))
	res := r.Reconcile(nil)
	checkInvariant(t, res, 0)
	if res.SyncedTrees == nil || res.Errors == nil {
		t.Fatal("result slices must be non-nil for JSON")
	}
}

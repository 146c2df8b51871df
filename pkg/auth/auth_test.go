package auth

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"arboria/entities"
	"arboria/pkg/apperr"
)

func testSvc(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(db, "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	svc := testSvc(t)

	u, err := svc.Register("0601020304", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if u.ID == "" || u.PasswordHash == "hunter2" {
		t.Fatalf("bad stored user: %+v", u)
	}

	if _, err := svc.Register("0601020304", "other"); !apperr.Is(err, apperr.Validation) {
		t.Fatalf("duplicate phone: want Validation, got %v", err)
	}

	got, tok, err := svc.Login("0601020304", "hunter2")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Fatal("login returned the wrong user")
	}
	if ParseToken("test-secret", tok) != u.ID {
		t.Fatal("token should identify the user")
	}
	if ParseToken("wrong-secret", tok) != "" {
		t.Fatal("token must not verify under another secret")
	}

	if _, _, err := svc.Login("0601020304", "wrong"); err == nil {
		t.Fatal("wrong password should fail")
	}
	if _, _, err := svc.Login("0999999999", "hunter2"); err == nil {
		t.Fatal("unknown phone should fail")
	}
}

func TestDemoLoginIsStable(t *testing.T) {
	svc := testSvc(t)

	first, tok1, err := svc.DemoLogin()
	if err != nil {
		t.Fatal(err)
	}
	if !first.IsDemo || tok1 == "" {
		t.Fatalf("demo user wrong: %+v", first)
	}
	second, _, err := svc.DemoLogin()
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Fatal("demo login should reuse the same account")
	}
}

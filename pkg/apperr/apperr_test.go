package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := New(PositionConflict, "a tree already exists at position A1")
	if KindOf(err) != PositionConflict {
		t.Fatalf("kind = %q", KindOf(err))
	}
	// wrapped errors keep their kind
	if KindOf(fmt.Errorf("handling request: %w", err)) != PositionConflict {
		t.Fatal("kind lost through wrapping")
	}
	if KindOf(errors.New("plain")) != Store {
		t.Fatal("untyped errors default to Store")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(Store, "create tree", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause should be reachable via errors.Is")
	}
	if err.Error() != "create tree: disk full" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestStatus(t *testing.T) {
	cases := map[Kind]int{
		NotFound:         http.StatusNotFound,
		RecordNotFound:   http.StatusNotFound,
		PositionConflict: http.StatusConflict,
		IndexOutOfRange:  http.StatusBadRequest,
		Validation:       http.StatusBadRequest,
		Store:            http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := Status(New(kind, "x")); got != want {
			t.Fatalf("%s -> %d, want %d", kind, got, want)
		}
	}
}

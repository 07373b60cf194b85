package repository

import (
	"reflect"
	"testing"
)

func TestUpdateSet_SkipsAbsentKeepsNull(t *testing.T) {
	var u updateSet
	u.Set("phone", "0123456")
	u.Set("logo_url", nil)
	// "location" deliberately never set: absent columns must not appear.

	clause, args := u.Clause(1)
	if clause != "phone = $1, logo_url = $2" {
		t.Fatalf("unexpected clause: %s", clause)
	}
	if !reflect.DeepEqual(args, []any{"0123456", nil}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateSet_PlaceholderOffset(t *testing.T) {
	var u updateSet
	u.Set("latitude", 23.7)
	u.Set("longitude", 90.4)

	clause, args := u.Clause(3)
	if clause != "latitude = $3, longitude = $4" {
		t.Fatalf("unexpected clause: %s", clause)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
}

func TestUpdateSet_Empty(t *testing.T) {
	var u updateSet
	if !u.Empty() {
		t.Fatalf("fresh set should be empty")
	}

	clause, args := u.Clause(1)
	if clause != "" || len(args) != 0 {
		t.Fatalf("empty set should render nothing, got %q / %v", clause, args)
	}

	u.Set("title", "Chair")
	if u.Empty() {
		t.Fatalf("set with one column should not be empty")
	}
}

package db

import (
	"reflect"
	"testing"
)

func TestWhereEmpty(t *testing.T) {
	w := &Where{}
	if w.Clause() != "1=1" {
		t.Fatalf("empty clause = %q, want 1=1", w.Clause())
	}
	if len(w.Args()) != 0 {
		t.Fatalf("empty where should carry no args")
	}
}

func TestWhereEq(t *testing.T) {
	w := &Where{}
	w.Eq("status", "active").Eq("category", "monitors")
	if w.Clause() != "status = ? AND category = ?" {
		t.Fatalf("clause = %q", w.Clause())
	}
	if !reflect.DeepEqual(w.Args(), []any{"active", "monitors"}) {
		t.Fatalf("args = %v", w.Args())
	}
}

func TestWhereSearchGroupsWithOr(t *testing.T) {
	w := &Where{}
	w.Eq("status", "active").Search("pump", "name", "summary")
	want := "status = ? AND (name LIKE ? OR summary LIKE ?)"
	if w.Clause() != want {
		t.Fatalf("clause = %q, want %q", w.Clause(), want)
	}
	if !reflect.DeepEqual(w.Args(), []any{"active", "%pump%", "%pump%"}) {
		t.Fatalf("args = %v", w.Args())
	}
}

func TestWhereArgsFollowClauseOrder(t *testing.T) {
	w := &Where{}
	w.Search("x", "name").Eq("status", "active")
	if w.Clause() != "(name LIKE ?) AND status = ?" {
		t.Fatalf("clause = %q", w.Clause())
	}
	if !reflect.DeepEqual(w.Args(), []any{"%x%", "active"}) {
		t.Fatalf("args = %v", w.Args())
	}
}

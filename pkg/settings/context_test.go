package settings

import (
	"context"
	"testing"
)

func TestIntoContextAndBack(t *testing.T) {
	s := &Run{NoColor: true, SortOrder: "activity"}
	ctx := IntoContext(context.Background(), s)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("FromContext() did not find settings")
	}
	if got != s {
		t.Fatalf("FromContext() = %+v, want the stored pointer", got)
	}
}

func TestFromContext_Missing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("FromContext() reported settings on an empty context")
	}
}

func TestNewRunParams_Defaults(t *testing.T) {
	s := NewRunParams()
	if s.SortOrder != "name" {
		t.Fatalf("default sort order = %q, want %q", s.SortOrder, "name")
	}
	if s.Interactive || s.NoColor {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

package uuid

import (
	"sort"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("expected valid UUID, got %q", id)
	}
	if v := Version(id); v != 7 {
		t.Errorf("expected version 7, got %d", v)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNew_TimeOrdered(t *testing.T) {
	first := New()
	time.Sleep(2 * time.Millisecond)
	second := New()

	ids := []string{second, first}
	sort.Strings(ids)
	if ids[0] != first {
		t.Errorf("expected %s to sort before %s", first, second)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "lowercase", input: "0190a5b4-1c2d-7e3f-8a9b-0c1d2e3f4a5b"},
		{name: "uppercase", input: "0190A5B4-1C2D-7E3F-8A9B-0C1D2E3F4A5B"},
		{name: "garbage", input: "not-a-uuid", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != "0190a5b4-1c2d-7e3f-8a9b-0c1d2e3f4a5b" {
				t.Errorf("expected normalized lowercase id, got %q", got)
			}
		})
	}
}

package specparse

import "testing"

func TestParseSharedKeys(t *testing.T) {
	got := Parse("A,B=500, R=200, a=90")

	want := map[string]float64{"A": 500, "B": 500, "R": 200, "a": 90}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(got), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %s: expected %v, got %v", k, v, got[k])
		}
	}
}

func TestParseDegreeMarkStripped(t *testing.T) {
	got := Parse("D=250, a=45°")

	if got["a"] != 45 {
		t.Errorf("expected angle 45, got %v", got["a"])
	}
	if got["D"] != 250 {
		t.Errorf("expected diameter 250, got %v", got["D"])
	}
}

func TestParseMalformedTokensSkipped(t *testing.T) {
	got := Parse("A=, =200, R=abc, B=120")

	if len(got) != 1 || got["B"] != 120 {
		t.Errorf("expected only B=120, got %v", got)
	}
}

func TestParseNoTokens(t *testing.T) {
	got := Parse("300 x 200")

	if len(got) != 0 {
		t.Errorf("expected empty map, got %v", got)
	}
}

func TestParseCaseSensitiveKeys(t *testing.T) {
	got := Parse("A=100, a=90")

	if got["A"] != 100 || got["a"] != 90 {
		t.Errorf("expected A=100 and a=90, got %v", got)
	}
}

package shape

import (
	"testing"

	"duct-cost/core/types"
)

func TestClassifyByName(t *testing.T) {
	cases := []struct {
		name  string
		row   types.Row
		shape string
	}{
		{"round tube", types.Row{Name: "Roura"}, "round_tube"},
		{"round silencer", types.Row{Name: "Tlumič hluku, kulatý"}, "damped_round_tube"},
		{"cell silencer", types.Row{Name: "Tlumič hluku, buňkový"}, "damped_flat_duct"},
		{"joint", types.Row{Name: "Vsuvka do potrubí"}, "round_tube_joint"},
		{"joint shorthand", types.Row{Name: "Vsuvka"}, "round_tube_joint"},
		{"flat duct", types.Row{Name: "Potrubí"}, "flat_duct"},
		{"flat-round reduction", types.Row{Name: "Redukce obdélník-roura"}, "flat_round_reduction"},
		{"tee", types.Row{Name: "T-kus"}, "round_tee"},
		{"unknown", types.Row{Name: "Klapka požární"}, "generic"},
		{"empty name", types.Row{}, "generic"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.row).ID(); got != c.shape {
				t.Errorf("expected %s, got %s", c.shape, got)
			}
		})
	}
}

// The floor channel refines the flat duct and must win for its two
// stock profiles.
func TestClassifyFloorChannelBeforeFlatDuct(t *testing.T) {
	cases := []struct {
		w, h  float64
		shape string
	}{
		{160, 40, "floor_flat_duct"},
		{200, 50, "floor_flat_duct"},
		{300, 200, "flat_duct"},
		{160, 50, "flat_duct"},
	}

	for _, c := range cases {
		row := types.Row{
			Name: "Potrubí",
			Extra: map[string]float64{
				types.DimWidth:  c.w,
				types.DimHeight: c.h,
			},
		}
		if got := Classify(row).ID(); got != c.shape {
			t.Errorf("%vx%v: expected %s, got %s", c.w, c.h, c.shape, got)
		}
	}
}

// Same-named shapes are told apart by spec markers.
func TestClassifyBySpecMarker(t *testing.T) {
	cases := []struct {
		name  string
		spec  string
		shape string
	}{
		{"Koleno", "D=250, R=200, a=90", "round_elbow"},
		{"Koleno", "A=500, B=300, R=100, a=45", "flat_elbow"},
		{"Koleno", "neznámý tvar", "generic"},
		{"Redukce", "A=500, B=300, A2=400, B2=200", "flat_reduction"},
		{"Redukce", "D=250, D2=160", "round_reduction"},
		{"Redukce", "", "generic"},
	}

	for _, c := range cases {
		row := types.Row{Name: c.name, Spec: c.spec}
		if got := Classify(row).ID(); got != c.shape {
			t.Errorf("%s %q: expected %s, got %s", c.name, c.spec, c.shape, got)
		}
	}
}

func TestOrderedRulesHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range ordered {
		if seen[r.ID()] {
			t.Errorf("duplicate rule id %s", r.ID())
		}
		seen[r.ID()] = true
	}
}

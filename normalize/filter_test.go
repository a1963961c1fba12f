package normalize

import "testing"

func TestSplitRaceInfo(t *testing.T) {
	disc, dist, start := SplitRaceInfo("Drafsport - 2100 - Autostart")
	if disc != "Drafsport" {
		t.Errorf("discipline = %q", disc)
	}
	if dist == nil || *dist != 2100 {
		t.Errorf("raceDistance = %v; want 2100", fv(dist))
	}
	if start == nil || *start != "Autostart" {
		t.Errorf("startType = %v; want Autostart", sv(start))
	}
}

func TestSplitRaceInfoLegacy(t *testing.T) {
	disc, dist, start := SplitRaceInfo("Drafsport")
	if disc != "Drafsport" || dist != nil || start != nil {
		t.Errorf("legacy form: got (%q, %v, %v)", disc, fv(dist), sv(start))
	}

	// Legacy prefix form: only the discipline token is trusted.
	disc, dist, start = SplitRaceInfo("Rensport - ...")
	if disc != "Rensport" || dist != nil || start != nil {
		t.Errorf("legacy prefix form: got (%q, %v, %v)", disc, fv(dist), sv(start))
	}
}

func TestSplitRaceInfoBadDistance(t *testing.T) {
	_, dist, start := SplitRaceInfo("Drafsport - kort - Bandstart")
	if dist != nil {
		t.Errorf("unparseable distance should be null, got %v", fv(dist))
	}
	if start == nil || *start != "Bandstart" {
		t.Errorf("startType = %v; want Bandstart", sv(start))
	}
}

func TestIsCancelled(t *testing.T) {
	for _, code := range []string{"0", "20", "21", "25", "29"} {
		if !IsCancelled(code) {
			t.Errorf("IsCancelled(%q) = false; want true", code)
		}
	}
	for _, nr := range []string{"1", "8", "19", "30", ""} {
		if IsCancelled(nr) {
			t.Errorf("IsCancelled(%q) = true; want false", nr)
		}
	}
}

func TestHarness(t *testing.T) {
	if !Harness("Drafsport") {
		t.Error("Drafsport should be kept")
	}
	if Harness("Rensport") || Harness("") {
		t.Error("non-harness disciplines should be dropped")
	}
}

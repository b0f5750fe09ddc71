package timezone

import (
	"testing"
	"time"
)

func TestResolveKnownZone(t *testing.T) {
	loc := Resolve("Europe/Moscow")
	if loc == nil {
		t.Fatal("expected a usable location, got nil")
	}

	// Moscow has been UTC+3 year-round since 2014.
	ref := time.Date(2024, 9, 2, 9, 0, 0, 0, loc)
	_, offset := ref.Zone()
	if offset != 3*60*60 {
		t.Errorf("expected UTC+3 offset, got %d seconds", offset)
	}
}

func TestResolveUnknownZoneFallsBack(t *testing.T) {
	loc := Resolve("Definitely/Not-A-Zone")
	if loc == nil {
		t.Fatal("expected a fallback location, got nil")
	}

	ref := time.Date(2024, 9, 2, 9, 0, 0, 0, loc)
	_, offset := ref.Zone()
	if offset != 3*60*60 {
		t.Errorf("expected fixed UTC+3 fallback, got %d seconds", offset)
	}
}

func TestMoscowIsCached(t *testing.T) {
	if Moscow() != Moscow() {
		t.Error("expected Moscow() to return the same location on repeated calls")
	}
}

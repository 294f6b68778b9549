package cmd

import (
	"testing"

	"dsk2woz2/apple2"
)

func TestMediaType(t *testing.T) {
	tests := []struct {
		name     string
		media    string
		filename string
		expected string
	}{
		{"extension fallback", "", "game.dsk", "dsk"},
		{"uppercase extension", "", "GAME.DSK", "dsk"},
		{"prodos extension", "", "volume.po", "po"},
		{"flag override wins", "po", "game.dsk", "po"},
		{"flag normalized", "PO", "game.dsk", "po"},
		{"no extension", "", "game", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mediaType(tc.media, tc.filename); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestSectorOrder(t *testing.T) {
	tests := []struct {
		dskType  string
		expected apple2.SectorOrder
		ok       bool
	}{
		{"dsk", apple2.DOS33Order, true},
		{"do", apple2.DOS33Order, true},
		{"", apple2.DOS33Order, true},
		{"po", apple2.ProDOSOrder, true},
		{"woz", apple2.DOS33Order, false},
		{"tap", apple2.DOS33Order, false},
	}

	for _, tc := range tests {
		order, ok := sectorOrder(tc.dskType)
		if ok != tc.ok || order != tc.expected {
			t.Errorf("%q: expected (%v, %v), got (%v, %v)",
				tc.dskType, tc.expected, tc.ok, order, ok)
		}
	}
}

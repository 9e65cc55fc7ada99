package utils

import "testing"

func TestNextID(t *testing.T) {
	t.Run("empty collection starts at 1", func(t *testing.T) {
		if got := NextID(nil, ""); got != "1" {
			t.Errorf("NextID: got %q, want %q", got, "1")
		}
	})

	t.Run("takes max plus one", func(t *testing.T) {
		if got := NextID([]string{"1", "3", "2"}, ""); got != "4" {
			t.Errorf("NextID: got %q, want %q", got, "4")
		}
	})

	t.Run("applies prefix", func(t *testing.T) {
		if got := NextID([]string{"g1", "g2"}, "g"); got != "g3" {
			t.Errorf("NextID: got %q, want %q", got, "g3")
		}
	})

	t.Run("strips mixed prefixes", func(t *testing.T) {
		// Products carry per-category prefixes but share one sequence.
		if got := NextID([]string{"c1", "b2", "sc3"}, "sh"); got != "sh4" {
			t.Errorf("NextID: got %q, want %q", got, "sh4")
		}
	})

	t.Run("ignores unparsable ids", func(t *testing.T) {
		if got := NextID([]string{"", "abc", "5"}, ""); got != "6" {
			t.Errorf("NextID: got %q, want %q", got, "6")
		}
	})

	t.Run("sequential assignment", func(t *testing.T) {
		var ids []string
		for i := 0; i < 5; i++ {
			ids = append(ids, NextID(ids, "g"))
		}
		want := []string{"g1", "g2", "g3", "g4", "g5"}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("id %d: got %q, want %q", i, ids[i], want[i])
			}
		}
	})
}

func TestProductPrefix(t *testing.T) {
	cases := map[string]string{
		"CAKES":       "c",
		"cakes":       "c",
		"Bread":       "b",
		"pies":        "p",
		"Small Chops": "sc",
		"shawarma":    "sh",
		"other":       "pa",
		"Donuts":      "i",
		"":            "i",
	}
	for name, want := range cases {
		if got := ProductPrefix(name); got != want {
			t.Errorf("ProductPrefix(%q): got %q, want %q", name, got, want)
		}
	}
}

package utils

import (
	"regexp"
	"testing"
)

func TestSlugifyBasic(t *testing.T) {
	cases := map[string]string{
		"Heart Monitor X1":     "heart-monitor-x1",
		"heart monitor x1!!":   "heart-monitor-x1",
		"  Infusion   Pump  ":  "infusion-pump",
		"ECG_Machine--Pro":     "ecg-machine-pro",
		"100% Cotton Gauze":    "100-cotton-gauze",
		"Model (2024) / Elite": "model-2024-elite",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlugifyCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)
	inputs := []string{
		"Heart Monitor X1",
		"Pulse-Oximeter 2.0",
		"A!@#$%^&*()B",
		"many     spaces",
		"___under___",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if got == "" {
			continue
		}
		if !valid.MatchString(got) {
			t.Fatalf("Slugify(%q) = %q, not a clean slug", in, got)
		}
	}
}

func TestSlugifyEmptyResult(t *testing.T) {
	for _, in := range []string{"", "   ", "!!!", "---", "血压计"} {
		if got := Slugify(in); got != "" {
			t.Fatalf("Slugify(%q) = %q, want empty", in, got)
		}
	}
}

func TestSlugifyTrimsHyphens(t *testing.T) {
	if got := Slugify("--Edge Case--"); got != "edge-case" {
		t.Fatalf("got %q, want edge-case", got)
	}
}

package slugger

import "testing"

func TestSlugifyBasic(t *testing.T) {
	cases := map[string]string{
		"Mitochondria":             "mitochondria",
		"Crime & Punishment":       "crime-and-punishment",
		"The Waste Land":           "the-waste-land",
		"  spaced   out  ":         "spaced-out",
		"Already-Hyphenated":       "already-hyphenated",
		"100 Years of Solitude!!!": "100-years-of-solitude",
		"":                         "",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSlugifyTransliterates(t *testing.T) {
	cases := map[string]string{
		"Antonín Dvořák":    "antonin-dvorak",
		"García Márquez":    "garcia-marquez",
		"Søren Kierkegaard": "soren-kierkegaard",
		"Æsir":              "aesir",
		"Đорђе":             "dorde",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSlugifyKeepsNonLatinContent(t *testing.T) {
	// Answer lines in non-Latin scripts must still yield a readable slug,
	// not an empty string that every later label would collide with.
	for _, input := range []string{"Пушкин", "北京", "Αθήνα"} {
		if got := Slugify(input); got == "" {
			t.Fatalf("Slugify(%q) produced an empty slug", input)
		}
	}
}

func TestTruncateRuneSafe(t *testing.T) {
	if got := Truncate("Dvořák", 4); got != "Dvoř" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("short", 50); got != "short" {
		t.Fatalf("Truncate should leave short labels alone, got %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Fatalf("Truncate with zero limit should be empty, got %q", got)
	}
}

func TestRegistryCollisionSuffixes(t *testing.T) {
	reg := NewRegistry()
	if got := reg.Allocate("Paris"); got != "paris" {
		t.Fatalf("first allocation = %q", got)
	}
	if got := reg.Allocate("Paris"); got != "paris-2" {
		t.Fatalf("second allocation = %q", got)
	}
	if got := reg.Allocate("paris!"); got != "paris-3" {
		t.Fatalf("third allocation = %q", got)
	}
	if got := reg.Allocate("London"); got != "london" {
		t.Fatalf("unrelated label = %q", got)
	}
}

func TestRegistrySlugsPairwiseDistinct(t *testing.T) {
	reg := NewRegistry()
	labels := []string{"Water", "water", "WATER!", "Fire", "fire", "Water"}
	seen := make(map[string]string, len(labels))
	for _, label := range labels {
		slug := reg.Allocate(label)
		if prior, dup := seen[slug]; dup {
			t.Fatalf("slug %q assigned to both %q and %q", slug, prior, label)
		}
		seen[slug] = label
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	first := NewRegistry()
	second := NewRegistry()
	if first.Allocate("Paris") != "paris" || second.Allocate("Paris") != "paris" {
		t.Fatal("independent registries should not share collision state")
	}
}

package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Master's Catering", "masters-catering"},
		{"Rudolfova slévárna", "rudolfova-slevarna"},
		{"Jízda s tříchodovým menu v Ringhofferu", "jizda-s-trichodovym-menu-v-ringhofferu"},
		{"Food & Drinks / 2025", "food-and-drinks-2025"},
		{"  trimmed  ", "trimmed"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

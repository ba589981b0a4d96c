package akshara

import (
	"errors"
	"strings"
	"testing"
)

func TestVersion_EmbeddedIsRelease(t *testing.T) {
	r, err := ParseRelease(Version())
	if err != nil {
		t.Fatalf("embedded version: %v", err)
	}
	if got := r.String(); got != Version() {
		t.Fatalf("round trip: got %q, want %q", got, Version())
	}
	if got, want := r.Tag(), VersionTag(); got != want {
		t.Fatalf("tag: got %q, want %q", got, want)
	}
}

func TestParseRelease(t *testing.T) {
	cases := []struct {
		version string
		want    Release
		ok      bool
	}{
		{version: "0.1.0", want: Release{Minor: 1}, ok: true},
		{version: "1.2.3-alpha.1", want: Release{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.1"}, ok: true},
		{version: "2.0.0+build.7", want: Release{Major: 2, Build: "build.7"}, ok: true},
		{version: " 3.4.5\n", want: Release{Major: 3, Minor: 4, Patch: 5}, ok: true},
		{version: "v1.2.3"},
		{version: "1.2"},
		{version: "01.2.3"},
	}

	for _, tc := range cases {
		got, err := ParseRelease(tc.version)
		if !tc.ok {
			if !errors.Is(err, ErrNotSemver) {
				t.Fatalf("ParseRelease(%q): err=%v, want ErrNotSemver", tc.version, err)
			}
			if IsSemver(tc.version) {
				t.Fatalf("IsSemver(%q): got true", tc.version)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseRelease(%q): got %+v, %v; want %+v", tc.version, got, err, tc.want)
		}
	}
}

func TestBanner_StartsWithTag(t *testing.T) {
	if got := Banner(); !strings.HasPrefix(got, "akshara "+VersionTag()) {
		t.Fatalf("banner=%q", got)
	}
}

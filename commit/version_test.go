package commit

import (
	"testing"
)

func TestParseVersion(t *testing.T) {
	tcs := []struct {
		name  string
		token string
		ok    bool
	}{
		{name: "plain", token: "1.2.3", ok: true},
		{name: "v-prefix", token: "v1.2.3", ok: true},
		{name: "build", token: "1.0.0+68", ok: true},
		{name: "prerelease", token: "2.0.0-beta.1", ok: true},
		{name: "v-prefix-build", token: "v3.0.6+71", ok: true},
		{name: "missing-patch", token: "1.2"},
		{name: "extra-part", token: "1.2.3.4"},
		{name: "leading-zero", token: "01.2.3"},
		{name: "words", token: "release-one"},
		{name: "alpha-build", token: "1.2.3+abc"},
		{name: "empty", token: ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseVersion(tc.token)
			if tc.ok && err != nil {
				t.Fatal(err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected parse failure, got %s", v)
			}
			if IsVersion(tc.token) != tc.ok {
				t.Errorf("IsVersion(%q) disagrees with ParseVersion", tc.token)
			}
		})
	}
}

func TestVersionPrecedence(t *testing.T) {
	tcs := []struct {
		name  string
		lower string
		upper string
	}{
		{name: "patch-numeric", lower: "1.0.9", upper: "1.0.10"},
		{name: "minor", lower: "1.9.0", upper: "1.10.0"},
		{name: "major", lower: "2.9.9", upper: "10.0.0"},
		{name: "build-numeric", lower: "1.0.0+68", upper: "1.0.0+71"},
		{name: "build-numeric-not-lexicographic", lower: "1.0.0+9", upper: "1.0.0+10"},
		{name: "no-build-before-build", lower: "1.0.0", upper: "1.0.0+1"},
		{name: "prerelease-before-release", lower: "2.0.0-beta.1", upper: "2.0.0"},
		{name: "prerelease-numeric", lower: "2.0.0-beta.1", upper: "2.0.0-beta.2"},
		{name: "v-prefix-ignored", lower: "v1.0.9", upper: "1.0.10"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			lo := mustVersion(t, tc.lower)
			hi := mustVersion(t, tc.upper)

			vs := []*Version{hi, lo}
			SortVersions(vs)
			if vs[0] != lo || vs[1] != hi {
				t.Fatalf("expected %s < %s, sorted as [%s %s]", tc.lower, tc.upper, vs[0], vs[1])
			}
		})
	}
}

func TestSortVersionsStable(t *testing.T) {
	raw := []string{"1.0.1+71", "0.9.0", "1.0.0+68", "1.0.1-beta.1", "v1.0.0"}
	var vs []*Version
	for _, s := range raw {
		vs = append(vs, mustVersion(t, s))
	}
	SortVersions(vs)

	expect := []string{"0.9.0", "v1.0.0", "1.0.0+68", "1.0.1-beta.1", "1.0.1+71"}
	for i, want := range expect {
		if vs[i].Raw != want {
			t.Fatalf("position %d: expected %s, got %s (full order: %v)", i, want, vs[i].Raw, vs)
		}
	}
}

func mustVersion(t *testing.T, token string) *Version {
	t.Helper()
	sv, err := ParseVersion(token)
	if err != nil {
		t.Fatalf("parse %q: %v", token, err)
	}
	return &Version{Version: sv, Raw: token}
}

package main

import (
	"strings"
	"testing"

	"lifegrid/pkg/core"
)

func TestRunGlider(t *testing.T) {
	var out strings.Builder
	opts := options{
		sim:       "life",
		steps:     1,
		window:    "-1,-1,3,1",
		overrides: kvList{"pattern=glider"},
	}
	if err := run(&out, opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"life rule B3/S23", "gen 0 population 5", "gen 1 population 5", "window [-1,-1..3,1]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRunASCIIUsesBounds(t *testing.T) {
	var out strings.Builder
	opts := options{sim: "life", steps: 0, quiet: true, overrides: kvList{"pattern=glider"}}
	if err := run(&out, opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := ".O.\n..O\nOOO\n"
	if !strings.HasSuffix(out.String(), want) {
		t.Fatalf("ascii glider missing, got:\n%s", out.String())
	}
}

func TestRunRejects(t *testing.T) {
	var out strings.Builder
	if err := run(&out, options{sim: "wireworld"}); err == nil {
		t.Fatal("unknown sim accepted")
	}
	if err := run(&out, options{sim: "life", steps: -1}); err == nil {
		t.Fatal("negative steps accepted")
	}
	if err := run(&out, options{sim: "life", window: "1,2,3"}); err == nil {
		t.Fatal("malformed window accepted")
	}
}

func TestParseWindow(t *testing.T) {
	r, err := parseWindow("5, -2, -3, 4")
	if err != nil {
		t.Fatalf("parseWindow: %v", err)
	}
	if r != core.NewRect(-3, -2, 5, 4) {
		t.Fatalf("window = %v", r)
	}
	if _, err := parseWindow("a,b,c,d"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestKVListRequiresEquals(t *testing.T) {
	var l kvList
	if err := l.Set("density"); err == nil {
		t.Fatal("missing '=' accepted")
	}
	if err := l.Set("density=0.5"); err != nil || l.String() != "density=0.5" {
		t.Fatalf("Set: %v, %q", err, l.String())
	}
}

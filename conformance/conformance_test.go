package conformance

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xyproto/jitcalc/internal/engine"
	"github.com/xyproto/jitcalc/internal/jit"
)

func TestLoadDir(t *testing.T) {
	suites, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	var names []string
	for _, s := range suites {
		names = append(names, s.Name)
	}
	want := "arithmetic division errors lenient"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("suite names = %q, want %q", got, want)
	}
}

func TestLoadCUE(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "division.cue"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !s.Options.Division {
		t.Errorf("division option not decoded")
	}
	first := s.Cases[0]
	if first.Name != "exact" || first.Expr != "10 / 2" || first.Expect == nil || *first.Expect != 5 {
		t.Errorf("first case decoded as %+v", first)
	}
	last := s.Cases[len(s.Cases)-1]
	if last.Error != "runtime" || last.Expect != nil {
		t.Errorf("last case decoded as %+v", last)
	}
}

func TestLoadYAML(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "arithmetic.yaml"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Options.Division || s.Options.Lenient {
		t.Errorf("unexpected options %+v", s.Options)
	}
	for _, c := range s.Cases {
		if c.Name == "signed overflow wraps" && (c.Expect == nil || *c.Expect != -9223372036854775808) {
			t.Errorf("minimum int64 not decoded: %+v", c)
		}
	}
}

func TestLoadRejectsInvalidSuites(t *testing.T) {
	tests := []struct {
		file    string
		content string
		wantErr string
	}{
		{"both.yaml", "name: x\ncases:\n  - expr: \"1\"\n    expect: 1\n    error: parse\n", "mutually exclusive"},
		{"neither.yaml", "name: x\ncases:\n  - expr: \"1\"\n", "needs expect or error"},
		{"kind.yaml", "name: x\ncases:\n  - expr: \"1\"\n    error: overflow\n", "unknown error kind"},
		{"empty.yaml", "name: x\n", "no cases"},
		{"kind.cue", "name: \"x\"\ncases: [{expr: \"1\", error: \"overflow\"}]\n", ""},
		{"field.cue", "name: \"x\"\ncases: [{expr: \"1\", expect: 1, result: 1}]\n", ""},
		{"range.cue", "name: \"x\"\ncases: [{expr: \"1\", expect: 9223372036854775808}]\n", ""},
		{"suite.json", "{}", "unsupported suite format"},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		path := filepath.Join(dir, tt.file)
		if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFile(path)
		if err == nil {
			t.Errorf("LoadFile(%s) succeeded, want error", tt.file)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("LoadFile(%s) error = %v, want it to contain %q", tt.file, err, tt.wantErr)
		}
	}
}

func TestRunnerTestdata(t *testing.T) {
	suites, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	r := &Runner{Oracle: NewOracle()}
	for _, s := range suites {
		results := r.RunSuite(s)
		if len(results) != len(s.Cases) {
			t.Fatalf("%s: %d results for %d cases", s.Name, len(results), len(s.Cases))
		}
		for _, res := range results {
			if !res.Passed && !res.Skipped {
				t.Errorf("%s/%s: %s", s.Name, res.Case.Title(), res.Reason)
			}
		}
		if engine.HostPlatform().CanExecute() {
			if _, _, skipped := Summary(results); skipped != 0 {
				t.Errorf("%s: %d cases skipped on an executable host", s.Name, skipped)
			}
		}
	}
}

func TestRunnerReportsFailures(t *testing.T) {
	s := &Suite{
		Name: "broken",
		Cases: []Case{
			{Name: "wrong kind", Expr: "5 +", Error: "lex"},
			{Name: "expected value", Expr: "5 +", Expect: expect(5)},
			{Name: "skipped", Expr: "5", Skip: "not today"},
			{Name: "right kind", Expr: "5 +", Error: "parse"},
		},
	}

	results := (&Runner{}).RunSuite(s)
	passed, failed, skipped := Summary(results)
	if passed != 1 || failed != 2 || skipped != 1 {
		t.Errorf("Summary = %d passed, %d failed, %d skipped, want 1, 2, 1", passed, failed, skipped)
	}
	if !strings.Contains(results[0].Reason, "expected lex error") {
		t.Errorf("unexpected reason %q", results[0].Reason)
	}
	if results[2].Reason != "not today" {
		t.Errorf("skip reason = %q", results[2].Reason)
	}
}

func TestRunnerSuiteOptions(t *testing.T) {
	s := &Suite{
		Name:    "division",
		Options: SuiteOptions{Division: true},
		Cases:   []Case{{Expr: "10 / 2", Expect: expect(5)}},
	}

	// The base options keep division off; the suite switches it on
	results := (&Runner{Options: jit.Options{}}).RunSuite(s)
	res := results[0]
	if res.Skipped {
		t.Skip(res.Reason)
	}
	if !res.Passed {
		t.Errorf("division suite failed: %s", res.Reason)
	}
}

func TestDemo(t *testing.T) {
	s := Demo()
	if len(s.Cases) != 6 {
		t.Fatalf("demo has %d cases, want 6", len(s.Cases))
	}
	if err := s.validate(); err != nil {
		t.Fatalf("demo suite is invalid: %v", err)
	}
	for _, res := range (&Runner{Oracle: NewOracle()}).RunSuite(s) {
		if !res.Passed && !res.Skipped {
			t.Errorf("demo %s: %s", res.Case.Title(), res.Reason)
		}
		if res.Passed && !res.Oracle {
			t.Errorf("demo %s: oracle did not confirm the result", res.Case.Title())
		}
	}
}

func TestOracle(t *testing.T) {
	o := NewOracle()

	tests := []struct {
		expr string
		want int64
		ok   bool
	}{
		{"5 + 10", 15, true},
		{"(5 + 10) * 2", 30, true},
		{"100 - 50 - 25", 25, true},
		{"3 - 10", -7, true},
		{"10 / 2", 0, false},
		{"9223372036854775807 + 1", 0, false},
		{"x + 1", 0, false},
		{"(5 + 3", 0, false},
	}
	for _, tt := range tests {
		got, ok := o.Eval(tt.expr)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Eval(%q) = %d, %v, want %d, %v", tt.expr, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []jit.ErrorKind{jit.KindLex, jit.KindParse, jit.KindUnsupported, jit.KindResource, jit.KindRuntime} {
		got, ok := parseKind(k.String())
		if !ok || got != k {
			t.Errorf("parseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := parseKind("division by zero"); ok {
		t.Errorf("parseKind accepted an unknown name")
	}
}

func TestLoadCUEIntegerExtremes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extremes.cue")
	content := `name: "extremes"
cases: [
	{expr: "0 - 9223372036854775807 - 1", expect: -9223372036854775808},
	{expr: "9223372036854775807", expect: 9223372036854775807},
	{expr: "5", expect: 5},
]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	want := []int64{math.MinInt64, math.MaxInt64, 5}
	for i, c := range s.Cases {
		if c.Expect == nil || *c.Expect != want[i] {
			t.Errorf("case %d: expect decoded as %v, want %d", i, c.Expect, want[i])
		}
	}
}

package checker

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/passguard/internal/corpus"
	"github.com/nao1215/passguard/internal/model"
	"golang.org/x/text/language"
)

// listLookup is an in-memory weak-password list for tests.
type listLookup []string

func (l listLookup) IndexOf(password string) int {
	for i, entry := range l {
		if entry == password {
			return i
		}
	}
	return -1
}

// findingTypes extracts the type of each finding, preserving order.
func findingTypes(findings []model.Finding) []string {
	types := make([]string, len(findings))
	for i, f := range findings {
		types[i] = f.Type
	}
	return types
}

func TestCheck(t *testing.T) {
	t.Parallel()

	c := New(listLookup{"123456", "password", "qwerty", "letmein1"})

	tests := []struct {
		name     string
		password string
		want     []string
	}{
		{
			name:     "all numeric",
			password: "12345678",
			want:     []string{model.FindingAllNumeric, model.FindingLowDiversity},
		},
		{
			name:     "all lowercase",
			password: "abcdefgh",
			want:     []string{model.FindingAllLowercase},
		},
		{
			name:     "all uppercase",
			password: "ABCDEFGH",
			want:     []string{model.FindingAllUppercase},
		},
		{
			name:     "short lowercase alphanumeric",
			password: "abc123",
			want:     []string{model.FindingTooShort, model.FindingLowDiversity},
		},
		{
			name:     "uppercase alphanumeric",
			password: "ABC12345",
			want:     []string{model.FindingLowDiversity},
		},
		{
			name:     "mixed classes",
			password: "aB3$xyz!",
			want:     []string{},
		},
		{
			name:     "mixed case letters only",
			password: "abcdEFGH",
			want:     []string{},
		},
		{
			name:     "empty password",
			password: "",
			want:     []string{model.FindingTooShort},
		},
		{
			name:     "known weak, short and numeric",
			password: "123456",
			want: []string{
				model.FindingKnownWeak,
				model.FindingTooShort,
				model.FindingAllNumeric,
				model.FindingLowDiversity,
			},
		},
		{
			name:     "known weak lowercase",
			password: "password",
			want:     []string{model.FindingKnownWeak, model.FindingAllLowercase},
		},
		{
			name:     "non-ascii letters are not lowercase a-z",
			password: "pässwörd",
			want:     []string{},
		},
		{
			name:     "length counts characters not bytes",
			password: "密码密码密码密",
			want:     []string{model.FindingTooShort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := findingTypes(c.Check(tt.password))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Check(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestCheckKnownWeakRank(t *testing.T) {
	t.Parallel()

	list := listLookup{"123456", "password", "qwerty", "letmein1"}
	c := New(list)

	for i, entry := range list {
		findings := c.Check(entry)
		if len(findings) == 0 || findings[0].Type != model.FindingKnownWeak {
			t.Fatalf("expected known weak finding first for %q, got %+v", entry, findings)
		}
		if findings[0].Severity != model.SeverityError {
			t.Errorf("expected error severity, got %v", findings[0].Severity)
		}
		wantRank := "#" + string(rune('0'+i+1))
		if !strings.Contains(findings[0].Title, wantRank) {
			t.Errorf("expected title for %q to cite rank %s, got %q", entry, wantRank, findings[0].Title)
		}
	}

	t.Run("absent password has no corpus finding", func(t *testing.T) {
		t.Parallel()
		for _, f := range c.Check("letmein2") {
			if f.Type == model.FindingKnownWeak {
				t.Errorf("unexpected known weak finding: %+v", f)
			}
		}
	})
}

func TestCheckSeverities(t *testing.T) {
	t.Parallel()

	c := New(nil)

	tests := []struct {
		password string
		typ      string
		severity model.Severity
	}{
		{"1234", model.FindingTooShort, model.SeverityError},
		{"12345678", model.FindingAllNumeric, model.SeverityError},
		{"abcdefgh", model.FindingAllLowercase, model.SeverityError},
		{"ABCDEFGH", model.FindingAllUppercase, model.SeverityError},
		{"abcd1234", model.FindingLowDiversity, model.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			t.Parallel()
			var found bool
			for _, f := range c.Check(tt.password) {
				if f.Type != tt.typ {
					continue
				}
				found = true
				if f.Severity != tt.severity {
					t.Errorf("expected %v, got %v", tt.severity, f.Severity)
				}
				if f.SeverityText != tt.severity.String() {
					t.Errorf("expected severity text %q, got %q", tt.severity.String(), f.SeverityText)
				}
				if f.Title == "" || f.Description == "" {
					t.Errorf("expected title and description, got %+v", f)
				}
			}
			if !found {
				t.Errorf("expected %s finding for %q", tt.typ, tt.password)
			}
		})
	}
}

func TestCheckLengthBoundary(t *testing.T) {
	t.Parallel()

	c := New(nil)
	for n := 0; n <= 12; n++ {
		password := strings.Repeat("aB3$", 3)[:n]
		hasShort := false
		for _, f := range c.Check(password) {
			if f.Type == model.FindingTooShort {
				hasShort = true
			}
		}
		if hasShort != (n < MinLength) {
			t.Errorf("length %d: too_short finding = %v", n, hasShort)
		}
	}
}

func TestCheckIsDeterministic(t *testing.T) {
	t.Parallel()

	c := New(listLookup{"password"})
	for _, password := range []string{"password", "abc123", "aB3$xyz!", ""} {
		first := c.Check(password)
		second := c.Check(password)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Check(%q) not deterministic: %+v vs %+v", password, first, second)
		}
	}
}

func TestCheckLanguage(t *testing.T) {
	t.Parallel()

	zh := New(listLookup{"password"}, WithLanguage(language.Chinese))
	findings := zh.Check("password")
	if len(findings) == 0 {
		t.Fatal("expected findings")
	}
	if findings[0].Title != "第1个已知的弱密码" {
		t.Errorf("unexpected chinese title: %q", findings[0].Title)
	}
	if findings[0].Description != "这是一个已知的弱密码，可以在几秒内被迅速爆破" {
		t.Errorf("unexpected chinese description: %q", findings[0].Description)
	}
}

func TestCheckWithCorpus(t *testing.T) {
	t.Parallel()

	c := corpus.New()
	ch := New(c)

	// Before the corpus is loaded it behaves as empty.
	for _, f := range ch.Check("123456") {
		if f.Type == model.FindingKnownWeak {
			t.Fatal("unexpected known weak finding before load")
		}
	}

	if err := c.LoadFrom(context.Background(), corpus.Embedded()); err != nil {
		t.Fatalf("failed to load corpus: %v", err)
	}

	findings := ch.Check("123456")
	if len(findings) == 0 || findings[0].Type != model.FindingKnownWeak {
		t.Fatalf("expected known weak finding after load, got %+v", findings)
	}
	if !strings.Contains(findings[0].Title, "#1") {
		t.Errorf("expected rank 1, got %q", findings[0].Title)
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	report := New(nil).Report("line 3", "abc123")
	if report.Label != "line 3" {
		t.Errorf("unexpected label %q", report.Label)
	}
	if report.ErrorCount != 1 || report.WarningCount != 1 {
		t.Errorf("expected 1 error and 1 warning, got %d/%d", report.ErrorCount, report.WarningCount)
	}
	if report.Fingerprint != model.Fingerprint("abc123") {
		t.Errorf("unexpected fingerprint %q", report.Fingerprint)
	}
}

func TestCheckAllDigitsIsAlsoLowDiversity(t *testing.T) {
	t.Parallel()

	c := New(nil)
	for _, password := range []string{"12345678", "0000000000", "20240101"} {
		got := c.Check(password)
		want := []string{model.FindingAllNumeric, model.FindingLowDiversity}
		if !reflect.DeepEqual(findingTypes(got), want) {
			t.Fatalf("Check(%q) = %v, want %v", password, findingTypes(got), want)
		}
		if got[0].Severity != model.SeverityError || got[1].Severity != model.SeverityWarning {
			t.Errorf("Check(%q): unexpected severities %v, %v", password, got[0].Severity, got[1].Severity)
		}
	}
}

func TestCheckLengthCountsRunes(t *testing.T) {
	t.Parallel()

	c := New(nil)

	tests := []struct {
		name      string
		password  string
		wantShort bool
	}{
		// 4 runes but 8 UTF-16 code units and 16 bytes
		{name: "four emoji", password: "😀😀😀😀", wantShort: true},
		{name: "seven emoji", password: "😀😀😀😀😀😀😀", wantShort: true},
		{name: "eight emoji", password: "😀😀😀😀😀😀😀😀", wantShort: false},
		{name: "seven ascii", password: "aB3$xyz", wantShort: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var short bool
			for _, f := range c.Check(tt.password) {
				if f.Type == model.FindingTooShort {
					short = true
				}
			}
			if short != tt.wantShort {
				t.Errorf("Check(%q): too_short = %v, want %v", tt.password, short, tt.wantShort)
			}
		})
	}
}

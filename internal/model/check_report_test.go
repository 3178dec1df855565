package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewCheckReport(t *testing.T) {
	t.Parallel()

	findings := []Finding{
		NewFinding(FindingTooShort, "short", "desc"),
		NewFinding(FindingAllNumeric, "numeric", "desc"),
		NewFinding(FindingLowDiversity, "diversity", "desc"),
	}
	report := NewCheckReport("line 1", "123456", findings)

	t.Run("counts findings by severity", func(t *testing.T) {
		t.Parallel()
		if report.ErrorCount != 2 {
			t.Errorf("expected 2 errors, got %d", report.ErrorCount)
		}
		if report.WarningCount != 1 {
			t.Errorf("expected 1 warning, got %d", report.WarningCount)
		}
	})

	t.Run("records rune length", func(t *testing.T) {
		t.Parallel()
		r := NewCheckReport("x", "pässwörd", nil)
		if r.Length != 8 {
			t.Errorf("expected length 8, got %d", r.Length)
		}
	})

	t.Run("is not acceptable with findings", func(t *testing.T) {
		t.Parallel()
		if report.Acceptable() {
			t.Error("expected report with findings to be unacceptable")
		}
		if !NewCheckReport("ok", "aB3$xyz!", nil).Acceptable() {
			t.Error("expected report without findings to be acceptable")
		}
	})

	t.Run("filters by severity", func(t *testing.T) {
		t.Parallel()
		warnings := report.GetFindingsBySeverity(SeverityWarning)
		if len(warnings) != 1 || warnings[0].Type != FindingLowDiversity {
			t.Errorf("unexpected warnings: %+v", warnings)
		}
	})

	t.Run("never serializes the password", func(t *testing.T) {
		t.Parallel()
		r := NewCheckReport("secret entry", "hunter2-unique-value", nil)
		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if strings.Contains(string(data), "hunter2-unique-value") {
			t.Errorf("plaintext password found in JSON: %s", data)
		}
	})
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := Fingerprint("password")
	b := Fingerprint("password")
	c := Fingerprint("Password")

	if a != b {
		t.Errorf("expected stable fingerprint, got %q and %q", a, b)
	}
	if a == c {
		t.Error("expected different fingerprints for different passwords")
	}
	if len(a) != fingerprintBytes*2 {
		t.Errorf("expected %d hex characters, got %d", fingerprintBytes*2, len(a))
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	reports := []*CheckReport{
		NewCheckReport("a", "aB3$xyz!", nil),
		NewCheckReport("b", "abc", []Finding{
			NewFinding(FindingTooShort, "", ""),
			NewFinding(FindingAllLowercase, "", ""),
		}),
		nil,
		NewCheckReport("c", "abc12345", []Finding{
			NewFinding(FindingLowDiversity, "", ""),
		}),
	}

	s := Summarize(reports)
	if s.Total != 3 {
		t.Errorf("expected total 3, got %d", s.Total)
	}
	if s.Acceptable != 1 {
		t.Errorf("expected 1 acceptable, got %d", s.Acceptable)
	}
	if s.Errors != 2 {
		t.Errorf("expected 2 errors, got %d", s.Errors)
	}
	if s.Warnings != 1 {
		t.Errorf("expected 1 warning, got %d", s.Warnings)
	}
}

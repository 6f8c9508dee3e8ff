package resolver

import (
	"errors"
	"testing"

	"github.com/voodooEntity/algebrain/src/system/auditor"
	"github.com/voodooEntity/algebrain/src/system/resolver"
	"github.com/voodooEntity/algebrain/src/system/structure"
)

// Test: the builtin catalogue sweeps clean
func Test_Audit_BuiltinsSweepClean(t *testing.T) {
	reg, _ := setupWithBuiltins()

	report := auditor.New(reg, newLogger(), nil).Sweep()
	if len(report.Findings) != 0 {
		t.Fatalf("expected no findings on builtins, got %d: %+v", len(report.Findings), report.Findings)
	}
	if report.Checked == 0 {
		t.Fatalf("sweep must have checked the declared pairs")
	}
	if report.Resolved == 0 || report.Resolved > report.Checked {
		t.Fatalf("resolved count inconsistent: %+v", report)
	}
}

// Test: an overlapping instance shows up as an ambiguity finding and the
// callback fires with the same report
func Test_Audit_DetectsOverlap(t *testing.T) {
	reg, _ := setupWithBuiltins()
	if err := registerShadowIntGroup(reg); err != nil {
		t.Fatalf("registering shadow fixture failed: %v", err)
	}

	var fromCallback *auditor.Report
	report := auditor.New(reg, newLogger(), func(r auditor.Report) {
		fromCallback = &r
	}).Sweep()

	if len(report.Findings) == 0 {
		t.Fatalf("expected ambiguity findings after shadow registration")
	}
	found := false
	for _, finding := range report.Findings {
		if finding.Structure != structure.GroupName {
			continue
		}
		if !errors.Is(finding.Err, resolver.ErrAmbiguousInstance) {
			t.Fatalf("group finding must be an ambiguity, got: %v", finding.Err)
		}
		found = true
	}
	if !found {
		t.Fatalf("no group ambiguity finding in: %+v", report.Findings)
	}

	if fromCallback == nil {
		t.Fatalf("callback was never invoked")
	}
	if len(fromCallback.Findings) != len(report.Findings) {
		t.Fatalf("callback report diverges from returned report")
	}
}

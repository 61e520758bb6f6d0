package testutil

import "testing"

func TestLogger_NotNil(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewRecord_Defaults(t *testing.T) {
	r := NewRecord()
	if r.MetricTitle == "" || r.Category == "" || r.ID == "" {
		t.Errorf("fixture record missing defaults: %+v", r)
	}
}

func TestNewRecord_Options(t *testing.T) {
	r := NewRecord(WithTitle("MFA Coverage"), WithTarget("100%"))
	if r.MetricTitle != "MFA Coverage" {
		t.Errorf("MetricTitle = %q", r.MetricTitle)
	}
	if r.Target != "100%" {
		t.Errorf("Target = %q", r.Target)
	}
}

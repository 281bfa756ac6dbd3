package model

import "testing"

func TestAuditStatus_IsPassed(t *testing.T) {
	tests := []struct {
		status   AuditStatus
		expected bool
	}{
		{AuditPassed, true},
		{AuditFailed, false},
		{AuditStatus(""), false},
	}

	for _, test := range tests {
		result := test.status.IsPassed()
		if result != test.expected {
			t.Errorf("AuditStatus(%s).IsPassed() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestAuditStatus_String(t *testing.T) {
	status := AuditFailed
	expected := "FAILED"
	result := status.String()

	if result != expected {
		t.Errorf("AuditStatus.String() = %s, expected %s", result, expected)
	}
}

func TestOverlayTarget_String(t *testing.T) {
	tests := []struct {
		target   OverlayTarget
		expected string
	}{
		{TargetBackdrop, "backdrop"},
		{TargetCloseButton, "close"},
		{TargetImage, "image"},
		{OverlayTarget(42), "unknown"},
	}

	for _, test := range tests {
		if got := test.target.String(); got != test.expected {
			t.Errorf("OverlayTarget(%d).String() = %s, expected %s", test.target, got, test.expected)
		}
	}
}

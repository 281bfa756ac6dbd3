package model

// AuditStatus represents the verdict of an evidence or assumption check
type AuditStatus string

const (
	// AuditPassed means the check supports the analysis as run
	AuditPassed AuditStatus = "PASSED"

	// AuditFailed means the check was violated and needed a correction
	AuditFailed AuditStatus = "FAILED"
)

// String returns the string representation of AuditStatus
func (s AuditStatus) String() string {
	return string(s)
}

// IsPassed returns true if the check passed
func (s AuditStatus) IsPassed() bool {
	return s == AuditPassed
}

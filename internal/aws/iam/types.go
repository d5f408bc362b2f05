package iam

import "time"

// ReportState is the readiness of the account credential report.
type ReportState int

const (
	ReportReady ReportState = iota
	ReportNotReady
	ReportNotPresent
	ReportExpired
)

func (s ReportState) String() string {
	switch s {
	case ReportReady:
		return "ready"
	case ReportNotReady:
		return "not-ready"
	case ReportNotPresent:
		return "not-present"
	case ReportExpired:
		return "expired"
	default:
		return "unknown"
	}
}

type CredentialReport struct {
	State       ReportState
	Content     []byte // CSV, only set when State is ReportReady
	GeneratedAt time.Time
}

type AccessKey struct {
	ID        string
	UserName  string
	Status    string // "Active" or "Inactive"
	CreatedAt time.Time
}

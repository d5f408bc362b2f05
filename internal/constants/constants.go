package constants

import "time"

// DefaultMaxAgeDays is how old an access key may get before it is deleted.
const DefaultMaxAgeDays = 180

// ReportPollInterval is the wait between credential report readiness checks.
const ReportPollInterval = 2 * time.Second

// DefaultMaxReportPolls caps the number of waits while the report is being
// generated. IAM usually finishes in a few seconds; 30 polls is about a minute.
const DefaultMaxReportPolls = 30

// DefaultSubject is the SNS subject used for rotation notifications.
const DefaultSubject = "Access key rotation report"

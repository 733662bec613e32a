package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// AccessTokenTTLSeconds is the time-to-live for access tokens in seconds (86400 seconds = 24 hours)
	AccessTokenTTLSeconds = 86400

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour

	// SessionTimeout is the default session timeout (24 hours)
	SessionTimeout = 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Call plan view constants
const (
	// ReviewPageSize is the number of rows per page on the call plan review table
	ReviewPageSize = 20

	// SummaryPageSize is the number of rows per page on the summary table
	SummaryPageSize = 10

	// ReferencePageSize is the number of rows per page in the add-customer reference picker
	ReferencePageSize = 10

	// RefreshDateLayout is the display format for the report refresh date (e.g. "Jan 02, 2024")
	RefreshDateLayout = "Jan 02, 2006"
)

// pkg/constants/constants.go
package constants

//============== CACHE KEYS ==============

// Redis key formats for login throttling.
const (
	// login_attempts:<userID> -> failed attempts counter
	CacheKeyLoginAttempts = "login_attempts:%d"
	// lockout:<userID> -> set while the account is locked
	CacheKeyLockout = "lockout:%d"
)

//============== DOCUMENTS ==============

const (
	WorksheetContentType     = "application/pdf"
	WorksheetFilenameFormat  = "Worksheet_%d.pdf"
	UncategorizedPlaceholder = "Uncategorized"
	WorksheetWrapWidth       = 80

	ReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ReportFilename    = "maintenance_report.xlsx"
)

const DateLayout = "2006-01-02"

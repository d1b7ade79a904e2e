package models

// Notice categories, mirroring the severity classes the templates style.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeDanger  = "danger"
)

// Notice is a short, categorized user-facing message shown once after a
// redirect or form redisplay. Notices travel inside the session cookie and
// are consumed on the next rendered page.
type Notice struct {
	Category string
	Message  string
}

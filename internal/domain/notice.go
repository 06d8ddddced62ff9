package domain

// NoticeSeverity is the visual weight of a notice.
type NoticeSeverity string

const (
	NoticeInfo    NoticeSeverity = "info"
	NoticeWarning NoticeSeverity = "warning"
	NoticeError   NoticeSeverity = "error"
)

// Notice is a transient, advisory message for the user. Fire-and-forget;
// the client renders it as a toast and nothing waits on it.
type Notice struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Severity    NoticeSeverity `json:"severity"`
}

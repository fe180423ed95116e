package dto

// Notification is the JSON body of every office endpoint: the message the
// flow showed plus the record behind it.
type Notification struct {
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Data     any    `json:"data"`

	ErrorCode string `json:"error_code,omitempty"`
}

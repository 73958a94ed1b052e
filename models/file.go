package models

// SelfTarget is the chat alias that resolves to the logged-in account's own
// chat ("message yourself").
const SelfTarget = "me"

// FileSendRequest is issued by the UI every time the user picks a file to
// send. It is consumed by exactly one send attempt and never retained.
type FileSendRequest struct {
	// Name is the original file name shown to the recipient.
	Name string `json:"name"`

	// Type is the MIME type of Data (e.g. "image/png").
	Type string `json:"type"`

	// Data holds the raw file content. It travels base64-encoded in JSON.
	Data []byte `json:"data"`
}

// SendFileResult is the structured reply to a FileSendRequest. Failures never
// cross the process boundary as errors; they are reported through Error.
type SendFileResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

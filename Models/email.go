package Models

// EmailConfig carries the SMTP settings delivery runs with, populated from
// the application config at send time.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	TLSEnabled bool
}

// EmailMessage is one outgoing plain-text message, typically a job card
// with its PDF attached.
type EmailMessage struct {
	To          []string
	CC          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

type Attachment struct {
	Filename string
	Data     []byte
	MimeType string
}

package email

import (
	"Garage/Models"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
)

// SendEmail sends an email using the provided configuration and message details.
// Attachments are encoded into a multipart/mixed body.
func SendEmail(config Models.EmailConfig, message Models.EmailMessage) error {
	messageBody := buildMessage(config, message)

	// Set up authentication
	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPServer)

	var recipients []string
	recipients = append(recipients, message.To...)
	recipients = append(recipients, message.CC...)

	serverAddr := fmt.Sprintf("%s:%d", config.SMTPServer, config.SMTPPort)

	if config.TLSEnabled {
		tlsConfig := &tls.Config{ServerName: config.SMTPServer}

		// Connect to the SMTP server with TLS
		conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
		if err != nil {
			return fmt.Errorf("failed to connect to SMTP server: %v", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, config.SMTPServer)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %v", err)
		}
		defer client.Close()

		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %v", err)
		}

		if err = client.Mail(config.FromEmail); err != nil {
			return fmt.Errorf("failed to set sender: %v", err)
		}

		for _, recipient := range recipients {
			if err = client.Rcpt(recipient); err != nil {
				return fmt.Errorf("failed to add recipient %s: %v", recipient, err)
			}
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("failed to open data connection: %v", err)
		}

		_, err = w.Write([]byte(messageBody))
		if err != nil {
			return fmt.Errorf("failed to write email body: %v", err)
		}

		err = w.Close()
		if err != nil {
			return fmt.Errorf("failed to close data connection: %v", err)
		}

		return client.Quit()
	}

	// Standard SMTP (non-TLS)
	return smtp.SendMail(
		serverAddr,
		auth,
		config.FromEmail,
		recipients,
		[]byte(messageBody),
	)
}

// buildMessage assembles the raw RFC 822 message, switching to
// multipart/mixed when attachments are present.
func buildMessage(config Models.EmailConfig, message Models.EmailMessage) string {
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", config.FromName, config.FromEmail)
	headers["To"] = strings.Join(message.To, ", ")
	headers["Subject"] = message.Subject
	headers["MIME-Version"] = "1.0"

	if len(message.CC) > 0 {
		headers["Cc"] = strings.Join(message.CC, ", ")
	}

	contentType := "text/plain; charset=UTF-8"

	var body strings.Builder

	if len(message.Attachments) == 0 {
		headers["Content-Type"] = contentType
		for key, value := range headers {
			body.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
		}
		body.WriteString("\r\n")
		body.WriteString(message.Body)
		return body.String()
	}

	boundary := "garage-mail-boundary-2a1f"
	headers["Content-Type"] = fmt.Sprintf("multipart/mixed; boundary=%q", boundary)
	for key, value := range headers {
		body.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	body.WriteString("\r\n")

	// Text part
	body.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	body.WriteString(fmt.Sprintf("Content-Type: %s\r\n\r\n", contentType))
	body.WriteString(message.Body)
	body.WriteString("\r\n")

	for _, attachment := range message.Attachments {
		mimeType := attachment.MimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		body.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		body.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", mimeType, attachment.Filename))
		body.WriteString("Content-Transfer-Encoding: base64\r\n")
		body.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n\r\n", attachment.Filename))

		encoded := base64.StdEncoding.EncodeToString(attachment.Data)
		// wrap base64 at 76 chars per RFC 2045
		for len(encoded) > 76 {
			body.WriteString(encoded[:76])
			body.WriteString("\r\n")
			encoded = encoded[76:]
		}
		body.WriteString(encoded)
		body.WriteString("\r\n")
	}
	body.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return body.String()
}

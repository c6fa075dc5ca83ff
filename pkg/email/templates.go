package email

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// ContactEmailData carries a stored contact submission into the templates.
type ContactEmailData struct {
	TicketNumber string
	Name         string
	Email        string
	Subject      string
	Message      string
	SubmittedAt  time.Time
	OwnerName    string
	OwnerPhone   string
}

// BuildContactNotificationEmail tells the portfolio owner about a new submission.
// Replies go straight to the sender.
func BuildContactNotificationEmail(owner string, data ContactEmailData) Message {
	subject := fmt.Sprintf("[%s] New contact: %s", data.TicketNumber, data.Subject)

	textBody := fmt.Sprintf(`New contact form submission

Ticket:  %s
From:    %s <%s>
Subject: %s
Time:    %s

%s
`,
		data.TicketNumber, data.Name, data.Email, data.Subject,
		data.SubmittedAt.Format(time.RFC1123), data.Message)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">New contact form submission</h2>
    <table style="border-collapse: collapse;">
        <tr><td style="padding-right: 12px;"><strong>Ticket</strong></td><td>%s</td></tr>
        <tr><td style="padding-right: 12px;"><strong>From</strong></td><td>%s &lt;%s&gt;</td></tr>
        <tr><td style="padding-right: 12px;"><strong>Subject</strong></td><td>%s</td></tr>
        <tr><td style="padding-right: 12px;"><strong>Time</strong></td><td>%s</td></tr>
    </table>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; white-space: pre-wrap;">%s</p>
</body>
</html>`,
		html.EscapeString(data.TicketNumber),
		html.EscapeString(data.Name), html.EscapeString(data.Email),
		html.EscapeString(data.Subject),
		data.SubmittedAt.Format(time.RFC1123),
		html.EscapeString(data.Message))

	return Message{
		To:       []string{owner},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
		Headers:  map[string]string{"Reply-To": data.Email},
	}
}

// BuildContactConfirmationEmail acknowledges a submission to its sender.
func BuildContactConfirmationEmail(data ContactEmailData) Message {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		name = "there"
	}
	owner := data.OwnerName
	if owner == "" {
		owner = "me"
	}

	var urgent string
	if data.OwnerPhone != "" {
		urgent = fmt.Sprintf("For urgent matters, call %s.", data.OwnerPhone)
	}

	subject := fmt.Sprintf("We received your message (%s)", data.TicketNumber)

	textBody := fmt.Sprintf(`Hi %s,

Thank you for reaching out. Your message has been received under ticket %s.
I typically respond within 24 hours. %s

Subject: %s

Thanks,
%s`,
		name, data.TicketNumber, urgent, data.Subject, owner)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Thank you for reaching out. Your message has been received under ticket
    <strong style="font-family: monospace;">%s</strong>.</p>
    <p>I typically respond within 24 hours. %s</p>
    <p style="color: #6b7280; font-size: 14px;">Subject: %s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>%s</p>
</body>
</html>`,
		html.EscapeString(name), html.EscapeString(data.TicketNumber),
		html.EscapeString(urgent), html.EscapeString(data.Subject), html.EscapeString(owner))

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

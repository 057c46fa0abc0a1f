package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"time"

	"resume/internal/models/request_models"
	"resume/pkg/config"
	"resume/pkg/utils"
)

type IMailService interface {
	SendFeedbackNotice(notice FeedbackNotice) error
	SendContactMessage(msg request_models.ContactRequest) error
}

type smtpMailService struct {
	cfg       config.SMTPConfig
	siteURL   string
	htmlTpl   *template.Template
	textTpl   *texttemplate.Template
	deliverFn func(to []string, msg []byte) error
	now       func() time.Time
	// timeout bounds one whole SMTP exchange, dial included.
	timeout time.Duration
}

const defaultSMTPTimeout = 15 * time.Second

func NewSMTPMailService(cfg config.SMTPConfig, siteURL string) (IMailService, error) {
	htmlTpl, err := template.New("mailHTML").Parse(baseHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse mail html template: %w", err)
	}
	textTpl, err := texttemplate.New("mailText").Parse(plainTextTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse mail text template: %w", err)
	}

	s := &smtpMailService{
		cfg:     cfg,
		siteURL: strings.TrimRight(siteURL, "/"),
		htmlTpl: htmlTpl,
		textTpl: textTpl,
		now:     time.Now,
		timeout: cfg.Timeout,
	}
	if s.timeout <= 0 {
		s.timeout = defaultSMTPTimeout
	}
	s.deliverFn = s.deliver
	return s, nil
}

// ------------------- Public API -------------------

const FeedbackNoticeSubject = "New feedback on the site"

func (s *smtpMailService) SendFeedbackNotice(notice FeedbackNotice) error {
	return s.sendToOperators(FeedbackNoticeSubject, EmailData{
		Title: FeedbackNoticeSubject,
		Intro: "Someone left feedback on the site.",
		Rows: []EmailRow{
			{Label: "Created", Value: notice.CreatedAt.Format("2006-01-02 15:04:05 MST")},
			{Label: "Author", Value: notice.Author},
			{Label: "About", Value: notice.Target},
			{Label: "Status", Value: notice.Status},
		},
		Body:      notice.Content,
		ButtonURL: s.siteURL + "/admin/feedback",
		ButtonTxt: "Open moderation",
	})
}

func (s *smtpMailService) SendContactMessage(msg request_models.ContactRequest) error {
	subject := fmt.Sprintf("Message from %s", msg.Name)
	return s.sendToOperators(subject, EmailData{
		Title: subject,
		Intro: "A visitor used the contact form.",
		Rows: []EmailRow{
			{Label: "Name", Value: msg.Name},
			{Label: "Email", Value: msg.Email},
		},
		Body: msg.Message,
	})
}

// ------------------- Rendering -------------------

type EmailRow struct {
	Label string
	Value string
}

type EmailData struct {
	Title     string
	Intro     string
	Rows      []EmailRow
	Body      string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 24px; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; padding: 32px; }
    h1 { margin: 0 0 12px; font-size: 22px; }
    table { border-collapse: collapse; margin: 16px 0; }
    td { padding: 4px 12px 4px 0; vertical-align: top; }
    td.label { color: #64748b; }
    blockquote { margin: 16px 0; padding: 12px 16px; background: #f1f5f9; border-left: 3px solid #3b82f6; white-space: pre-wrap; }
    .btn { display: inline-block; padding: 10px 20px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 8px; }
    .footer { margin-top: 24px; color: #64748b; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>{{.Title}}</h1>
    <p>{{.Intro}}</p>
    {{if .Rows}}<table>{{range .Rows}}
      <tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}
    </table>{{end}}
    {{if .Body}}<blockquote>{{.Body}}</blockquote>{{end}}
    {{if .ButtonURL}}<p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>{{end}}
    <div class="footer">{{.AppName}} &middot; {{.Year}}</div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}
{{range .Rows}}
{{.Label}}: {{.Value}}{{end}}
{{if .Body}}
{{.Body}}
{{end}}{{if .ButtonURL}}
{{.ButtonTxt}}: {{.ButtonURL}}
{{end}}
-- {{.AppName}} {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) sendToOperators(subject string, data EmailData) error {
	to := s.cfg.Operators()
	if len(to) == 0 {
		return utils.ErrMailNotConfigured
	}
	data.AppName = s.cfg.FromName
	data.Year = s.now().Year()

	html, text, err := s.renderEmail(data)
	if err != nil {
		return fmt.Errorf("render mail: %w", err)
	}
	return s.deliverFn(to, s.buildMessage(to, subject, html, text))
}

func (s *smtpMailService) buildMessage(to []string, subject, htmlBody, textBody string) []byte {
	now := s.now()
	boundary := fmt.Sprintf("alt_%d", now.UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", strings.Join(to, ", "))
	write("Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) deliver(to []string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	deadline := time.Now().Add(s.timeout)
	dialer := &net.Dialer{Deadline: deadline}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer conn.Close()
	// a server that accepts and then stalls must not hold the caller
	if err = conn.SetDeadline(deadline); err != nil {
		return err
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err = c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}

package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"

	"github.com/badoux/checkmail"
)

// Mailer is the fire-and-forget notification boundary: a failed send is
// logged, never surfaced to the request that queued it.
type Mailer interface {
	QueueResetInstructions(to string, token string)
}

var resetTemplate = template.Must(template.New("reset").Parse(`
<p>Hello,</p>
<p>We received a request to reset the password for your account.</p>
<p>Use the token below to set a new password. It expires in one hour.</p>
<p><b>{{.Token}}</b></p>
<p>If you didn't request this, you can safely ignore this email.</p>
`))

type mailTask struct {
	to      string
	subject string
	body    string
}

type SMTPMailer struct {
	from     string
	password string
	host     string
	port     string
	queue    chan mailTask
}

func NewSMTPMailer() *SMTPMailer {
	m := &SMTPMailer{
		from:     os.Getenv("SMTP_FROM"),
		password: os.Getenv("SMTP_PASSWORD"),
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		queue:    make(chan mailTask, 64),
	}

	go m.worker()

	return m
}

func (m *SMTPMailer) QueueResetInstructions(to string, token string) {
	if err := checkmail.ValidateFormat(to); err != nil {
		log.Printf("mail: refusing to queue reset instructions, bad address %q: %v", to, err)
		return
	}

	var body bytes.Buffer
	if err := resetTemplate.Execute(&body, struct{ Token string }{Token: token}); err != nil {
		log.Printf("mail: rendering reset template: %v", err)
		return
	}

	task := mailTask{to: to, subject: "Reset your password", body: body.String()}

	select {
	case m.queue <- task:
	default:
		log.Printf("mail: queue full, dropping reset email for %s", to)
	}
}

func (m *SMTPMailer) worker() {
	for task := range m.queue {
		if err := m.send(task); err != nil {
			log.Printf("mail: sending to %s failed: %v", task.to, err)
		}
	}
}

func (m *SMTPMailer) send(task mailTask) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, task.to, task.subject, task.body,
	)

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{task.to}, []byte(msg))
}

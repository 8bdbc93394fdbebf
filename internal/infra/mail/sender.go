package mail

import (
	"bytes"
	"fmt"
	"log"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/growthx-admin/internal/entity"
)

func NewEmailSender(host string, port int, user, password, from string, enabled bool) *EmailSender {
	if from == "" {
		from = user
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		enabled:  enabled && password != "",
	}
}

func (s *EmailSender) Enabled() bool {
	return s.enabled
}

func (s *EmailSender) SendFollowup(to, name string, level entity.FollowupLevel) error {
	if !s.enabled {
		log.Println("⚠️ Email: channel disabled, followup not sent")
		return fmt.Errorf("email channel disabled")
	}

	tmpl, ok := followupTemplates[level]
	if !ok {
		return fmt.Errorf("no email template for level %d", level)
	}

	t, err := template.New("followup").Parse(tmpl.Body)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, FollowupEmailData{Name: name}); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", tmpl.Subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}

package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"captaleads/internal/infra/queue"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	From       string
	SalesInbox string
}

type newLeadEmailData struct {
	Nome       string
	Email      string
	Telefone   string
	CapturedAt string
}

func NewEmailSender(host string, port int, user, password, from, salesInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		SalesInbox: salesInbox,
	}
}

// NotifyNewLead avisa o time comercial que um lead novo entrou no funil.
// Implementa queue.LeadNotifier.
func (s *EmailSender) NotifyNewLead(ctx context.Context, payload queue.LeadCapturedPayload) error {
	data := newLeadEmailData{
		Nome:       payload.Nome,
		Email:      payload.Email,
		Telefone:   payload.Telefone,
		CapturedAt: payload.CapturedAt.Format("02/01/2006 15:04"),
	}

	tmplPath := filepath.Join("templates", "novo_lead.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", fmt.Sprintf("Novo lead: %s", payload.Nome))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

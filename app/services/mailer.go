package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/yaarastore/backend/app/models"
)

type MailerConfig struct {
	Host        string
	Port        string
	Username    string
	Password    string
	FromName    string
	FromAddress string
	Locale      string
}

// SMTPMailer sends order confirmations over plain SMTP. It is constructed
// once at startup and shared by every request.
type SMTPMailer struct {
	config  MailerConfig
	strings EmailStrings
}

func NewMailer(cfg MailerConfig) *SMTPMailer {
	return &SMTPMailer{
		config:  cfg,
		strings: EmailStringsFor(cfg.Locale),
	}
}

// SendOrderConfirmation mails the customer and the store owner. The
// customer copy replies to the owner; the owner copy replies to the
// customer so a plain reply reaches them directly.
func (m *SMTPMailer) SendOrderConfirmation(order *models.Order) error {
	html := OrderEmailHTML(order, m.strings)
	subject := fmt.Sprintf("%s %d", m.strings.SubjectPrefix, order.ID)

	customerHeaders := map[string]string{
		"From":     fmt.Sprintf("%q <%s>", m.config.FromName, m.config.FromAddress),
		"To":       order.Email,
		"Reply-To": m.config.FromAddress,
	}
	if err := m.send(order.Email, subject, html, customerHeaders); err != nil {
		return fmt.Errorf("customer email: %w", err)
	}

	ownerHeaders := map[string]string{
		"From":     fmt.Sprintf("%q <%s>", order.Name, m.config.FromAddress),
		"To":       m.config.FromAddress,
		"Reply-To": order.Email,
	}
	if err := m.send(m.config.FromAddress, subject, html, ownerHeaders); err != nil {
		return fmt.Errorf("owner email: %w", err)
	}

	log.Println("✅ Email sent")
	return nil
}

func (m *SMTPMailer) send(to, subject, htmlBody string, headers map[string]string) error {

	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=\"UTF-8\""

	var msg string
	for k, v := range headers {
		msg += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	msg += "\r\n" + htmlBody

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	return smtp.SendMail(addr, auth, m.config.FromAddress, []string{to}, []byte(msg))
}

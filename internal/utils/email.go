package utils

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

var ErrMailerDisabled = errors.New("SMTP non configuré")

// MailConfig est lue depuis l'environnement (SMTP_*)
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func MailConfigFromEnv() MailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USERNAME")
	}
	return MailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}
}

func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.From != ""
}

var billTemplate = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 420px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<pre style="font-family: monospace; font-size: 14px; line-height: 1.4;">{{.Bill}}</pre>
		{{if .HasQR}}<p>Scan to pay with any UPI app:</p><img src="cid:upi-qr.png" alt="UPI QR" width="200" height="200">{{end}}
	</div>
</body>
</html>`))

// BuildBillMessage prépare l'e-mail de la note (HTML + texte brut, QR en pièce inline)
func BuildBillMessage(cfg MailConfig, to, subject, billText string, qrPNG []byte) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(cfg.From); err != nil {
		return nil, err
	}
	if err := msg.To(to); err != nil {
		return nil, err
	}
	msg.Subject(subject)

	var html bytes.Buffer
	data := struct {
		Title string
		Bill  string
		HasQR bool
	}{subject, billText, len(qrPNG) > 0}
	if err := billTemplate.Execute(&html, data); err != nil {
		return nil, err
	}

	msg.SetBodyString(mail.TypeTextPlain, billText)
	msg.AddAlternativeString(mail.TypeTextHTML, html.String())
	if len(qrPNG) > 0 {
		if err := msg.EmbedReader("upi-qr.png", bytes.NewReader(qrPNG)); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

// SendBillEmail envoie la note au client
func SendBillEmail(cfg MailConfig, to, subject, billText string, qrPNG []byte) error {
	if !cfg.Enabled() {
		return ErrMailerDisabled
	}

	msg, err := BuildBillMessage(cfg, to, subject, billText, qrPNG)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de la note à", to)
	return client.DialAndSend(msg)
}

// SMTPMailer envoie les notes avec la configuration SMTP donnée
type SMTPMailer struct {
	Config MailConfig
}

func (m SMTPMailer) SendBill(to, subject, text string, qrPNG []byte) error {
	return SendBillEmail(m.Config, to, subject, text, qrPNG)
}

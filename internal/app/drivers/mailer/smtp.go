package mailer

import (
	"fmt"
	"halo-service/internal/app/config"
	"halo-service/internal/pkg/dto/requests"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"
)

type SMTPClient struct {
	Host        string
	Port        int
	Username    string
	Password    string
	EmailSender string
	Auth        smtp.Auth
	sendMail    func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPClient(driverConfig *config.DriverConfig, log *logrus.Logger) *SMTPClient {
	auth := smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	sender := driverConfig.SMTP.EmailSender
	if sender == "" {
		sender = driverConfig.SMTP.Username
	}
	log.WithFields(logrus.Fields{
		"host": driverConfig.SMTP.Host,
		"port": driverConfig.SMTP.Port,
	}).Info("SMTP client initialized")

	return &SMTPClient{
		Host:        driverConfig.SMTP.Host,
		Port:        driverConfig.SMTP.Port,
		Username:    driverConfig.SMTP.Username,
		Password:    driverConfig.SMTP.Password,
		EmailSender: sender,
		Auth:        auth,
		sendMail:    smtp.SendMail,
	}
}

// Send delivers one queued email. HTML bodies are sent as text/html, the rest
// as text/plain.
func (c *SMTPClient) Send(payload *requests.EmailPayload) error {
	if payload.To == "" {
		return fmt.Errorf("email payload has no recipient")
	}

	message := BuildMessage(c.EmailSender, payload)
	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	return c.sendMail(addr, c.Auth, c.EmailSender, []string{payload.To}, message)
}

func BuildMessage(from string, payload *requests.EmailPayload) []byte {
	contentType := "text/plain"
	if payload.IsHTML {
		contentType = "text/html"
	}

	var builder strings.Builder
	builder.WriteString("From: " + from + "\r\n")
	builder.WriteString("To: " + payload.To + "\r\n")
	builder.WriteString("Subject: " + payload.Subject + "\r\n")
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: " + contentType + "; charset=\"UTF-8\"\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(payload.Body)
	return []byte(builder.String())
}

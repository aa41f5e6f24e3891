package email

import (
	"context"
	"fmt"
	"net/smtp"
)

type smtpSender struct {
	addr string
	from string
}

func NewSMTPSender(host, port, from string) Sender {
	return &smtpSender{
		addr: host + ":" + port,
		from: from,
	}
}

func (s *smtpSender) SendConfirmationCode(ctx context.Context, to, code string) error {
	subject := "Confirmation code for token"
	body := fmt.Sprintf("Your confirmation code is: %s", code)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, to, subject, body))

	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

package services

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendVerifyEmail(email, fullName, code string) error
	SendPasswordResetEmail(email, token string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

var verifyEmailTmpl = template.Must(template.New("verify_email").Parse(`
	<h2>Hello {{.FullName}},</h2>
	<p>Use the following code to verify your email address:</p>
	<p style="font-size:24px;letter-spacing:4px;"><strong>{{.Code}}</strong></p>
	<p>The code expires in 5 minutes. If you did not request this, you can ignore this email.</p>
	<p>Best regards,<br>The JobPort Team</p>
`))

func (s *emailService) SendVerifyEmail(email, fullName, code string) error {
	var body bytes.Buffer
	if err := verifyEmailTmpl.Execute(&body, struct {
		FullName string
		Code     string
	}{FullName: fullName, Code: code}); err != nil {
		return fmt.Errorf("render verify email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Verify Email")
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verify email: %w", err)
	}
	return nil
}

var resetEmailTmpl = template.Must(template.New("reset_email").Parse(`
	<h2>Reset your password</h2>
	<p>Someone asked to reset the password for this account. Paste the token
	below into the reset form to pick a new password:</p>
	<p style="font-family:monospace;font-size:18px;"><strong>{{.Token}}</strong></p>
	<p>The token is valid for one hour and works once. If this was not you,
	no action is needed and your password stays as it is.</p>
	<p>Best regards,<br>The JobPort Team</p>
`))

func (s *emailService) SendPasswordResetEmail(email, token string) error {
	var body bytes.Buffer
	if err := resetEmailTmpl.Execute(&body, struct{ Token string }{Token: token}); err != nil {
		return fmt.Errorf("render reset email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Reset your JobPort password")
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

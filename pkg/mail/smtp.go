package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/hirebase/recruiting/pkg/auth"
)

// SMTPMailer implements auth.Mailer over an SMTP relay.
type SMTPMailer struct {
	client    *gomail.Client
	from      string
	publicURL string // base URL used in verification/reset links
}

func NewSMTPMailer(host string, port int, username, password, from, publicURL string) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(username),
			gomail.WithPassword(password),
		)
	}
	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: from, publicURL: publicURL}, nil
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return m.client.DialAndSendWithContext(ctx, msg)
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, user auth.User) error {
	return m.send(ctx, user.Email, "Добро пожаловать",
		fmt.Sprintf("Здравствуйте, %s! Регистрация прошла успешно.", user.Username))
}

func (m *SMTPMailer) SendLoginNotice(ctx context.Context, user auth.User) error {
	return m.send(ctx, user.Email, "Вход в аккаунт",
		fmt.Sprintf("Здравствуйте, %s! В ваш аккаунт выполнен вход.", user.Username))
}

func (m *SMTPMailer) SendVerification(ctx context.Context, user auth.User, token string) error {
	return m.send(ctx, user.Email, "Подтверждение почты",
		fmt.Sprintf("Перейдите по ссылке для подтверждения почты: %s/auth/verify?token=%s", m.publicURL, token))
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, user auth.User, token string) error {
	return m.send(ctx, user.Email, "Сброс пароля",
		fmt.Sprintf("Перейдите по ссылке для сброса пароля: %s/auth/reset-password?token=%s", m.publicURL, token))
}

func (m *SMTPMailer) SendPasswordChanged(ctx context.Context, user auth.User) error {
	return m.send(ctx, user.Email, "Пароль изменён",
		fmt.Sprintf("Здравствуйте, %s! Пароль вашего аккаунта был изменён.", user.Username))
}

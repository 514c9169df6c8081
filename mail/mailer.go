// Package mail はパスワードリセットメールの送信を実装する
package mail

import (
	"fmt"
	"os"
	"strconv"

	gomail "github.com/wneessen/go-mail"
)

type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FrontendURL string
}

// NewConfigFromEnv は環境変数からSMTP設定を読み込む
func NewConfigFromEnv() Config {
	port, err := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if err != nil {
		port = 587
	}
	return Config{
		Host:        os.Getenv("MAIL_HOST"),
		Port:        port,
		Username:    os.Getenv("MAIL_USER"),
		Password:    os.Getenv("MAIL_PASS"),
		From:        os.Getenv("MAIL_FROM"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}

// SMTPMailer はservices.ResetMailerのSMTP実装
type SMTPMailer struct {
	cfg Config
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPasswordReset(to string, resetToken string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Your password reset token")
	msg.SetBodyString(gomail.TypeTextHTML, m.resetBody(resetToken))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}

func (m *SMTPMailer) resetBody(resetToken string) string {
	resetLink := fmt.Sprintf("%s/reset?resetToken=%s", m.cfg.FrontendURL, resetToken)
	return fmt.Sprintf(`
		<div style="border: 1px solid black; padding: 20px; font-size: 20px; line-height: 2;">
			<h2>Your password reset token is here.</h2>
			<p><a href="%s">Click here to reset your password.</a></p>
			<p>This link is valid for one hour.</p>
		</div>`, resetLink)
}

package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/digitalcoban/coban/internal/shared/config"
)

// SMTPEmailService sends subscription lifecycle mail over SMTP.
type SMTPEmailService struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

// NotifyExpired tells a user their subscription lapsed and access is
// closed until they check out again.
func (s *SMTPEmailService) NotifyExpired(ctx context.Context, to, username string, endedAt time.Time) error {
	subject := "Aboneliğiniz sona erdi"

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Merhaba %s,</h2>
			<p>Aboneliğiniz %s tarihinde sona erdi ve hesabınıza erişim kapatıldı.</p>
			<p>Sürülerinizi takip etmeye devam etmek için hesabınıza giriş yapıp ödemeyi tamamlayabilirsiniz.</p>
		</body>
		</html>
	`, username, endedAt.Format("02.01.2006"))

	plainBody := fmt.Sprintf(`Merhaba %s,

Aboneliğiniz %s tarihinde sona erdi ve hesabınıza erişim kapatıldı.

Sürülerinizi takip etmeye devam etmek için hesabınıza giriş yapıp ödemeyi tamamlayabilirsiniz.
`, username, endedAt.Format("02.01.2006"))

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

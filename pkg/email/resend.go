package email

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/resendlabs/resend-go"
	"github.com/tamsou/portfolio-backend/pkg/logger"
)

type EmailService struct {
	client    *resend.Client
	from      string
	fromName  string
	contactTo string
}

func NewEmailService() *EmailService {
	return &EmailService{
		client:    resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:      os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName:  os.Getenv("EMAIL_FROM_NAME"),
		contactTo: os.Getenv("CONTACT_EMAIL"),
	}
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<p>Bonjour {{.Name}},</p>
<p>Merci de confirmer votre adresse email en cliquant sur le lien ci-dessous :</p>
<p><a href="{{.URL}}">Confirmer mon email</a></p>
<p>Ce lien expire dans 24 heures.</p>
`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<p>Bonjour {{.Name}},</p>
<p>Bienvenue ! Votre compte a bien été créé. Vous retrouverez vos achats et
vos codes de téléchargement sur votre profil.</p>
`))

var contactTmpl = template.Must(template.New("contact").Parse(`
<p>Nouveau message via le formulaire de contact :</p>
<p><strong>{{.Name}}</strong> ({{.Email}})</p>
<p>{{.Message}}</p>
`))

func (s *EmailService) send(to, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.from),
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		logger.L.Errorw("failed to send email", "to", to, "subject", subject, "error", err)
		return err
	}

	logger.L.Infow("email sent", "to", to, "subject", subject)
	return nil
}

func (s *EmailService) SendVerificationEmail(to, name, token string) error {
	url := fmt.Sprintf("%s/auth/verify?token=%s", os.Getenv("PUBLIC_URL"), token)
	return s.send(to, "Confirmez votre adresse email", verificationTmpl, map[string]string{
		"Name": name,
		"URL":  url,
	})
}

func (s *EmailService) SendWelcomeEmail(to, name string) error {
	return s.send(to, "Bienvenue", welcomeTmpl, map[string]string{
		"Name": name,
	})
}

// SendContactMessage relays a contact-form submission to the site owner.
func (s *EmailService) SendContactMessage(name, fromEmail, message string) error {
	return s.send(s.contactTo, "Nouveau message de contact", contactTmpl, map[string]string{
		"Name":    name,
		"Email":   fromEmail,
		"Message": message,
	})
}

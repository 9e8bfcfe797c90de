package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendLeadNotification(toEmail, name, email, phone, chatSummary string) error
	SendContactNotification(toEmail, name, email, company, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendLeadNotification(toEmail, name, email, phone, chatSummary string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New qualified lead: %s", name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Lead From Ideation Chat</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<h3>Conversation Summary</h3>
			<pre style="background: #f5f5f5; padding: 10px; white-space: pre-wrap;">%s</pre>
		</div>
	`, name, email, phone, chatSummary)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send lead notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Lead notification sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendContactNotification(toEmail, name, email, company, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New contact form message from %s", name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Contact Form Submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Company:</strong> %s</p>
			<h3>Message</h3>
			<p>%s</p>
		</div>
	`, name, email, company, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send contact notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Contact notification sent to %s\n", toEmail)
	return nil
}

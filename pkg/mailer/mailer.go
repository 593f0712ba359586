package mailer

import (
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=pkgmocks github.com/mailkite/mailkite/pkg/mailer Mailer

// Mailer is the interface for sending emails
type Mailer interface {
	// SendMessage sends one rendered message to a recipient
	SendMessage(msg *Message) error
	// SendConfirmation sends a double opt-in confirmation email
	SendConfirmation(email, confirmURL string) error
}

// Message is one rendered email ready for delivery
type Message struct {
	To        string
	ToName    string
	FromEmail string
	FromName  string
	Subject   string
	BodyHTML  string
	BodyText  string
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	APIEndpoint  string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendMessage sends one rendered message to a recipient
func (m *SMTPMailer) SendMessage(message *Message) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	fromEmail := message.FromEmail
	fromName := message.FromName
	if fromEmail == "" {
		fromEmail = m.config.FromEmail
		fromName = m.config.FromName
	}
	if err := msg.FromFormat(fromName, fromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if message.ToName != "" {
		if err := msg.AddToFormat(message.ToName, message.To); err != nil {
			return fmt.Errorf("failed to set email recipient: %w", err)
		}
	} else if err := msg.To(message.To); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.BodyHTML)
	if message.BodyText != "" {
		msg.AddAlternativeString(mail.TypeTextPlain, message.BodyText)
	}

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending message to: %s", message.To)
		log.Printf("From: %s <%s>", fromName, fromEmail)
		log.Printf("Subject: %s", message.Subject)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendConfirmation sends a double opt-in confirmation email
func (m *SMTPMailer) SendConfirmation(email, confirmURL string) error {
	subject := "Please confirm your subscription"

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>Confirm your subscription</h1>
			<p>Hello,</p>
			<p>Click the link below to confirm your subscription:</p>
			<p><a href="%s">Confirm subscription</a></p>
			<p>If the link doesn't work, copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>If you did not sign up, please ignore this email.</p>
		</body>
	</html>`, confirmURL, confirmURL)

	plainBody := fmt.Sprintf(
		"Hello,\n\nUse the following link to confirm your subscription: %s\n\n"+
			"If you did not sign up, please ignore this email.", confirmURL)

	return m.SendMessage(&Message{
		To:       email,
		Subject:  subject,
		BodyHTML: htmlBody,
		BodyText: plainBody,
	})
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Only add authentication if username and password are provided
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25)
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}

// ConsoleMailer is a development implementation that just logs emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendMessage logs the message details to console
func (m *ConsoleMailer) SendMessage(message *Message) error {
	fmt.Println("==============================================================")
	fmt.Println("                       OUTBOUND EMAIL                         ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", message.To)
	fmt.Printf("Subject: %s\n\n", message.Subject)
	fmt.Println(message.BodyText)
	fmt.Println("==============================================================")
	return nil
}

// SendConfirmation logs the confirmation details to console
func (m *ConsoleMailer) SendConfirmation(email, confirmURL string) error {
	fmt.Println("==============================================================")
	fmt.Println("                  SUBSCRIPTION CONFIRMATION                   ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", email)
	fmt.Printf("Confirmation URL: %s\n", confirmURL)
	fmt.Println("==============================================================")
	return nil
}

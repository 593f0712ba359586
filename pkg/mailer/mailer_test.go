package mailer

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog captures log output for testing
func captureLog(f func()) string {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	f()
	log.SetOutput(os.Stderr)
	return buf.String()
}

// captureOutput captures stdout for testing
func captureOutput(f func()) string {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func testConfig() *Config {
	return &Config{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		FromEmail: "no-reply@mailkite.com",
		FromName:  "Mailkite",
	}
}

func TestSMTPMailerSendMessageTestMode(t *testing.T) {
	m := NewTestSMTPMailer(testConfig())

	output := captureLog(func() {
		err := m.SendMessage(&Message{
			To:       "alice@example.com",
			Subject:  "Hello",
			BodyHTML: "<p>Hello Alice</p>",
			BodyText: "Hello Alice",
		})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "alice@example.com")
	assert.Contains(t, output, "Hello")
}

func TestSMTPMailerSendMessageUsesDefaultSender(t *testing.T) {
	m := NewTestSMTPMailer(testConfig())

	output := captureLog(func() {
		err := m.SendMessage(&Message{
			To:       "alice@example.com",
			Subject:  "Hello",
			BodyHTML: "<p>Hello</p>",
		})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "no-reply@mailkite.com")
}

func TestSMTPMailerSendMessageInvalidRecipient(t *testing.T) {
	m := NewTestSMTPMailer(testConfig())

	err := m.SendMessage(&Message{
		To:       "not-an-address",
		Subject:  "Hello",
		BodyHTML: "<p>Hello</p>",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set email recipient")
}

func TestSMTPMailerSendConfirmation(t *testing.T) {
	m := NewTestSMTPMailer(testConfig())

	output := captureLog(func() {
		err := m.SendConfirmation("alice@example.com", "https://app.mailkite.com/confirm?token=abc")
		require.NoError(t, err)
	})

	assert.Contains(t, output, "alice@example.com")
	assert.Contains(t, output, "confirm your subscription")
}

func TestConsoleMailer(t *testing.T) {
	m := NewConsoleMailer()

	output := captureOutput(func() {
		err := m.SendMessage(&Message{
			To:       "alice@example.com",
			Subject:  "Hello",
			BodyText: "Hello Alice",
		})
		require.NoError(t, err)
	})

	assert.True(t, strings.Contains(output, "alice@example.com"))
	assert.True(t, strings.Contains(output, "Hello Alice"))

	output = captureOutput(func() {
		err := m.SendConfirmation("alice@example.com", "https://app.mailkite.com/confirm?token=abc")
		require.NoError(t, err)
	})

	assert.True(t, strings.Contains(output, "confirm?token=abc"))
}

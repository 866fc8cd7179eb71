package mail_test

import (
	"bytes"
	"context"
	"testing"

	"supplyconnect/internal/infra/mail"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func TestConfirmationMessage(t *testing.T) {
	msg := mail.ConfirmationMessage("https://example.com", "a@example.com", "ab+c/d")

	assert.Equal(t, "a@example.com", msg.To)
	assert.Contains(t, msg.Body, "https://example.com/auth/confirm?token=ab%2Bc%2Fd")
}

func TestLogMailer_WritesInsteadOfSending(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New("test")
	logger.SetOutput(&buf)

	err := mail.NewLogMailer(logger).Send(context.Background(), mail.Message{To: "a@example.com", Subject: "hi"})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "mail_not_sent")
	assert.Contains(t, buf.String(), "a@example.com")
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := mail.NewSMTPMailer(mail.SMTPConfig{Host: "localhost", Port: 2525, From: "no-reply@example.com"})
	err := m.Send(ctx, mail.Message{To: "a@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

type recordingSender struct {
	sent []mail.Message
}

func (r *recordingSender) Send(_ context.Context, msg mail.Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

func TestConfirmationSender(t *testing.T) {
	rec := &recordingSender{}
	s := mail.NewConfirmationSender(rec, "http://localhost:8080")

	assert.NoError(t, s.SendConfirmation(context.Background(), "a@example.com", "tok"))
	assert.NoError(t, s.SendConfirmation(context.Background(), "b@example.com", ""))

	if assert.Len(t, rec.sent, 1) {
		assert.Equal(t, "a@example.com", rec.sent[0].To)
		assert.Contains(t, rec.sent[0].Body, "http://localhost:8080/auth/confirm?token=tok")
	}
}

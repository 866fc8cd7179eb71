package mail

import (
	"context"
	"fmt"
	"net/url"
)

// SMTPMailer / LogMailer
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// 登録確認メール
func ConfirmationMessage(siteURL string, to string, token string) Message {
	link := fmt.Sprintf("%s/auth/confirm?token=%s", siteURL, url.QueryEscape(token))
	return Message{
		To:      to,
		Subject: "Confirm your SupplyConnect account",
		Body: "Welcome to SupplyConnect!\n\n" +
			"Please confirm your email address by opening the link below:\n" +
			link + "\n\n" +
			"If you did not sign up, you can ignore this email.\n",
	}
}

type ConfirmationSender struct {
	sender  Sender
	siteURL string
}

func NewConfirmationSender(sender Sender, siteURL string) *ConfirmationSender {
	return &ConfirmationSender{sender: sender, siteURL: siteURL}
}

// tokenが空（確認不要の設定）のときは送らない
func (s *ConfirmationSender) SendConfirmation(ctx context.Context, email string, token string) error {
	if token == "" {
		return nil
	}
	return s.sender.Send(ctx, ConfirmationMessage(s.siteURL, email, token))
}

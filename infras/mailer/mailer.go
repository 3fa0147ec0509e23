package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"

	"maludy/config"
	"maludy/infras/otel"
	"maludy/shared/constant"
)

const (
	otelAttrRecipient = "recipient"
	otelAttrSubject   = "subject"
)

// Attachment is attached either inline (Content) or by reference (Path, a
// publicly fetchable URL).
type Attachment struct {
	Filename    string
	Path        string
	Content     []byte
	ContentType string
}

type Email struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, email Email) (id string, err error)
}

type mailerImpl struct {
	client *resend.Client
	config *config.Config
	otel   otel.Otel
}

func (m *mailerImpl) Send(ctx context.Context, email Email) (id string, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: email.To,
		otelAttrSubject:   email.Subject,
	})

	params := &resend.SendEmailRequest{
		From:    m.config.External.Resend.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	for _, attachment := range email.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    attachment.Filename,
			Path:        attachment.Path,
			Content:     attachment.Content,
			ContentType: attachment.ContentType,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Error().Err(err).Strs("to", email.To).Str("subject", email.Subject).Msg("Failed to send email")

		return constant.Empty, fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("id", sent.Id).Strs("to", email.To).Str("subject", email.Subject).Msg("Sent email")

	return sent.Id, nil
}

func New(config *config.Config, otel otel.Otel) Mailer {
	client := resend.NewClient(config.External.Resend.APIKey)

	return &mailerImpl{
		client: client,
		config: config,
		otel:   otel,
	}
}

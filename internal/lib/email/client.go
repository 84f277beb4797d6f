// Package email sends notification mail through Resend.
//
// Bodies are rendered from HTML templates embedded into the binary.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/holocron/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names an embedded email template.
type Template string

const (
	// TemplateFavoriteAdded corresponds to templates/favorite_added.html
	TemplateFavoriteAdded Template = "favorite_added"
)

// Client wraps the Resend client and the sender identity.
type Client struct {
	client    *resend.Client
	from      string
	templates *template.Template
	logger    *zerolog.Logger
}

// NewClient creates an email Client from the email config block.
func NewClient(cfg *config.EmailConfig, logger *zerolog.Logger) (*Client, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email templates")
	}

	return &Client{
		client:    resend.NewClient(cfg.ResendAPIKey),
		from:      fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress),
		templates: tmpl,
		logger:    logger,
	}, nil
}

// Render executes templateName with data.
func (c *Client) Render(templateName Template, data any) (string, error) {
	var body bytes.Buffer
	if err := c.templates.ExecuteTemplate(&body, string(templateName)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}
	return body.String(), nil
}

// SendEmail renders templateName with data and sends it to a single
// recipient. It returns the provider's message id.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data any) (string, error) {
	html, err := c.Render(templateName, data)
	if err != nil {
		return "", err
	}

	sent, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to send email")
	}

	c.logger.Debug().
		Str("template", string(templateName)).
		Str("message_id", sent.Id).
		Msg("email sent")

	return sent.Id, nil
}

// FavoriteAdded is the data rendered into the favorite-added template.
type FavoriteAdded struct {
	Kind string
	Name string
}

// SendFavoriteAddedEmail tells a user that a character or planet was added
// to their favorites.
func (c *Client) SendFavoriteAddedEmail(ctx context.Context, to string, data FavoriteAdded) error {
	_, err := c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("%s added to your favorites", data.Name),
		TemplateFavoriteAdded,
		data,
	)
	return err
}

package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pawhaven/config"
	"pawhaven/models"
	"pawhaven/utils"

	"go.uber.org/zap"
)

const resendAPI = "https://api.resend.com/emails"

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Mailer sends transactional email through the Resend HTTP API.
type Mailer struct {
	apiKey string
	from   string
	client *http.Client
}

// NewMailer builds a Mailer from configuration. Without an API key it runs in
// mock mode and only logs the message.
func NewMailer() *Mailer {
	return &Mailer{
		apiKey: config.AppConfig.ResendAPIKey,
		from:   config.AppConfig.MailFrom,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers a single email. The HTTP client timeout bounds how long a
// delivery attempt may block the worker.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.apiKey == "" {
		utils.GetLogger().Warn("mailer: missing RESEND_API_KEY, mock email triggered",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	payload := resendEmail{
		From:    m.from,
		To:      to,
		Subject: subject,
		Html:    htmlBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mailer: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendAPI, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("mailer: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailer: Resend API error: %s", resp.Status)
	}
	return nil
}

// ComposeBookingStatusEmail renders the subject and body for a status-change
// message. The two booking kinds carry different subject shapes.
func ComposeBookingStatusEmail(p models.BookingStatusPayload) (string, string) {
	var subject, body string
	switch p.Kind {
	case models.NotifyKindPet:
		subject = fmt.Sprintf("Your grooming appointment was %s", p.Status)
		body = fmt.Sprintf(
			"<h2>Grooming booking update</h2><p>Your %s appointment on %s has been <b>%s</b>.</p>",
			p.SubjectContext, p.Date, p.Status,
		)
	default:
		subject = fmt.Sprintf("Your caregiver booking was %s", p.Status)
		body = fmt.Sprintf(
			"<h2>Caregiver booking update</h2><p>Your booking with %s on %s has been <b>%s</b>.</p>",
			p.SubjectContext, p.Date, p.Status,
		)
	}
	return subject, body
}

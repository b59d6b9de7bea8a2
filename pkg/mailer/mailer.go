package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mentorhub/mentorhub-api/pkg/circuitbreaker"
	"github.com/mentorhub/mentorhub-api/pkg/httpclient"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/retry"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Message kinds, used as the metrics label
const (
	KindVerificationCode = "verification_code"
	KindContactForm      = "contact_form"
)

// Message is a single outbound email
type Message struct {
	Kind    string `json:"kind"`
	To      string `json:"to"`
	ReplyTo string `json:"replyTo,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"text"`
}

// Sender delivers a message. Send returns only after the message was accepted or rejected.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// WebhookConfig configures the HTTP mail relay
type WebhookConfig struct {
	URL    string
	Secret string
	From   string
}

type webhookPayload struct {
	From string `json:"from"`
	Message
}

// WebhookSender posts messages as JSON to a mail relay endpoint
type WebhookSender struct {
	cfg      WebhookConfig
	client   httpclient.Client
	breaker  *gobreaker.CircuitBreaker
	retryCfg retry.Config
}

// NewWebhookSender creates a sender guarded by the "mail" circuit breaker
func NewWebhookSender(cfg WebhookConfig, client httpclient.Client) *WebhookSender {
	return &WebhookSender{
		cfg:      cfg,
		client:   client,
		breaker:  circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("mail")),
		retryCfg: retry.MailConfig(),
	}
}

// Breaker exposes the circuit breaker for health reporting
func (s *WebhookSender) Breaker() *gobreaker.CircuitBreaker {
	return s.breaker
}

// Send delivers msg, retrying transient failures with backoff
func (s *WebhookSender) Send(ctx context.Context, msg Message) error {
	start := time.Now()

	err := retry.Do(ctx, s.retryCfg, "mail."+msg.Kind, func() error {
		_, err := circuitbreaker.Execute(s.breaker, func() (struct{}, error) {
			return struct{}{}, s.post(ctx, msg)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return retry.Permanent(err)
		}
		return err
	})

	duration := metrics.MeasureDuration(start)
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.MailDispatchDuration.WithLabelValues(msg.Kind, status).Observe(duration)
	metrics.MailDispatchTotal.WithLabelValues(msg.Kind, status).Inc()
	logger.LogAPICall(ctx, "mail", msg.Kind, status, duration, zap.Error(err))

	return err
}

func (s *WebhookSender) post(ctx context.Context, msg Message) error {
	body, err := json.Marshal(webhookPayload{From: s.cfg.From, Message: msg})
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to encode mail payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to build mail request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.Secret != "" {
		req.Header.Set("X-Webhook-Secret", s.cfg.Secret)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail relay unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	default:
		return retry.Permanent(fmt.Errorf("mail relay rejected message with status %d", resp.StatusCode))
	}
}

// LogSender writes messages to the log instead of delivering them.
// Used in development when no relay is configured.
type LogSender struct{}

// Send logs msg and always succeeds
func (LogSender) Send(ctx context.Context, msg Message) error {
	logger.Info("Mail delivery skipped, no relay configured",
		zap.String("kind", msg.Kind),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	logger.Debug("Mail body", zap.String("kind", msg.Kind), zap.String("body", msg.Body))
	metrics.MailDispatchTotal.WithLabelValues(msg.Kind, "skipped").Inc()
	return nil
}

// Package notifier отправляет сообщения форм и покупок в вебхуки чат-платформы.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// DefaultTimeout ограничивает время одного запроса к вебхуку
const DefaultTimeout = 10 * time.Second

// Исходы отправки для метрик
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeOpen    = "circuit_open"
)

// Recorder учитывает исходы отправки
type Recorder interface {
	IncNotification(channel, outcome string)
}

// StatusError возвращается, когда вебхук ответил не 2xx
type StatusError struct {
	Channel    domain.Channel
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook %s responded with status %d: %s", e.Channel, e.StatusCode, e.Body)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, domain.ErrNotificationFailed)
func (e *StatusError) Unwrap() error {
	return domain.ErrNotificationFailed
}

// RateLimitError возвращается при ответе 429
type RateLimitError struct {
	Channel    domain.Channel
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("webhook %s rate limited, retry after %s", e.Channel, e.RetryAfter)
}

func (e *RateLimitError) Unwrap() error {
	return domain.ErrNotificationFailed
}

// WebhookClient реализует domain.Notifier.
// На каждый канал свой URL и свой circuit breaker, повторов нет.
type WebhookClient struct {
	endpoints  map[domain.Channel]string
	breakers   map[domain.Channel]*gobreaker.CircuitBreaker
	httpClient *http.Client
	logger     *zap.Logger
	metrics    Recorder
}

// NewWebhookClient создает новый WebhookClient.
// Каналы с пустым URL считаются ненастроенными.
func NewWebhookClient(endpoints map[domain.Channel]string, timeout time.Duration, logger *zap.Logger, metrics Recorder) *WebhookClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &WebhookClient{
		endpoints: make(map[domain.Channel]string, len(endpoints)),
		breakers:  make(map[domain.Channel]*gobreaker.CircuitBreaker, len(endpoints)),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}

	for channel, url := range endpoints {
		if url == "" {
			continue
		}
		c.endpoints[channel] = url
		c.breakers[channel] = newBreaker(string(channel))
	}

	return c
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "webhook-" + name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	})
}

// Configured сообщает, задан ли вебхук для канала
func (c *WebhookClient) Configured(channel domain.Channel) bool {
	_, ok := c.endpoints[channel]
	return ok
}

// Notify отправляет сообщение в вебхук канала
func (c *WebhookClient) Notify(ctx context.Context, channel domain.Channel, msg *domain.Message) error {
	url, ok := c.endpoints[channel]
	if !ok {
		c.record(channel, outcomeFailure)
		return fmt.Errorf("%w: webhook for %s is not configured", domain.ErrNotificationFailed, channel)
	}

	body, contentType, err := encode(msg)
	if err != nil {
		c.record(channel, outcomeFailure)
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}

	_, err = c.breakers[channel].Execute(func() (interface{}, error) {
		return nil, c.send(ctx, channel, url, body, contentType)
	})

	switch {
	case err == nil:
		c.record(channel, outcomeSuccess)
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		c.record(channel, outcomeOpen)
		c.logger.Warn("webhook circuit open", zap.String("channel", string(channel)))
		return fmt.Errorf("%w: %s webhook is temporarily unavailable: %v", domain.ErrNotificationFailed, channel, err)
	default:
		c.record(channel, outcomeFailure)
		c.logger.Error("webhook delivery failed", zap.String("channel", string(channel)), zap.Error(err))
		return err
	}
}

func (c *WebhookClient) send(ctx context.Context, channel domain.Channel, url string, body []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", domain.ErrNotificationFailed, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", domain.ErrNotificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		seconds, _ := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64)
		return &RateLimitError{Channel: channel, RetryAfter: time.Duration(seconds * float64(time.Second))}
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Channel: channel, StatusCode: resp.StatusCode, Body: string(snippet)}
}

func (c *WebhookClient) record(channel domain.Channel, outcome string) {
	if c.metrics != nil {
		c.metrics.IncNotification(string(channel), outcome)
	}
}

// encode собирает тело запроса: JSON без вложения или multipart с payload_json и file
func encode(msg *domain.Message) ([]byte, string, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode message: %w", err)
	}

	if msg.Attachment == nil {
		return payload, "application/json", nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("payload_json", string(payload)); err != nil {
		return nil, "", fmt.Errorf("failed to write payload: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, msg.Attachment.Filename))
	header.Set("Content-Type", msg.Attachment.ContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(msg.Attachment.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write file part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

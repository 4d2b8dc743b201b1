package reseller

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"smm-bot/internal/infra/metrics"
)

const (
	actionServices = "services"
	actionAdd      = "add"
	actionCancel   = "cancel"
	actionBalance  = "balance"
	actionStatus   = "status"

	maxBodySize = 10 << 20
)

// Client - клиент API реселлера. Каждый вызов - отдельный POST-запрос без
// повторов и без переиспользования соединений.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	logger     *slog.Logger
	tracer     trace.Tracer
}

func NewClient(apiURL, apiKey string, timeout time.Duration, tracerProvider trace.TracerProvider, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
		},
		apiURL: apiURL,
		apiKey: apiKey,
		logger: logger,
		tracer: tracerProvider.Tracer("smm-bot/reseller"),
	}
}

// Services возвращает весь каталог услуг.
func (c *Client) Services(ctx context.Context) (_ []Service, err error) {
	ctx, finish := c.begin(ctx, actionServices)
	defer func() { finish(err) }()

	body, err := c.post(ctx, actionServices, nil)
	if err != nil {
		return nil, err
	}

	return decodeServices(body)
}

// AddOrder создает заказ и возвращает его номер.
func (c *Client) AddOrder(ctx context.Context, serviceID, link string, quantity int) (_ string, err error) {
	ctx, finish := c.begin(ctx, actionAdd)
	defer func() { finish(err) }()

	body, err := c.post(ctx, actionAdd, url.Values{
		"service":  {serviceID},
		"link":     {link},
		"quantity": {strconv.Itoa(quantity)},
	})
	if err != nil {
		return "", err
	}

	fields, err := decodeFields(body)
	if err != nil {
		return "", err
	}
	if msg, ok := fields["error"]; ok {
		return "", &APIError{Message: msg}
	}

	orderID, ok := fields["order"]
	if !ok || orderID == "" {
		return "", malformed("add: no order in response")
	}

	return orderID, nil
}

// CancelOrders отменяет заказы. orderIDs передается как есть - номера через запятую.
func (c *Client) CancelOrders(ctx context.Context, orderIDs string) (_ []CancelResult, err error) {
	ctx, finish := c.begin(ctx, actionCancel)
	defer func() { finish(err) }()

	body, err := c.post(ctx, actionCancel, url.Values{"orders": {orderIDs}})
	if err != nil {
		return nil, err
	}

	return decodeCancel(body)
}

func (c *Client) Balance(ctx context.Context) (_ Balance, err error) {
	ctx, finish := c.begin(ctx, actionBalance)
	defer func() { finish(err) }()

	body, err := c.post(ctx, actionBalance, nil)
	if err != nil {
		return Balance{}, err
	}

	fields, err := decodeFields(body)
	if err != nil {
		return Balance{}, err
	}
	if msg, ok := fields["error"]; ok {
		return Balance{}, &APIError{Message: msg}
	}

	amount, ok := fields["balance"]
	if !ok {
		return Balance{}, malformed("balance: no balance in response")
	}

	return Balance{Amount: amount, Currency: fields["currency"]}, nil
}

func (c *Client) OrderStatus(ctx context.Context, orderID string) (_ OrderStatus, err error) {
	ctx, finish := c.begin(ctx, actionStatus)
	defer func() { finish(err) }()

	body, err := c.post(ctx, actionStatus, url.Values{"order": {orderID}})
	if err != nil {
		return OrderStatus{}, err
	}

	fields, err := decodeFields(body)
	if err != nil {
		return OrderStatus{}, err
	}
	if msg, ok := fields["error"]; ok {
		return OrderStatus{}, &APIError{Message: msg}
	}

	return OrderStatus{
		Charge:   fields["charge"],
		Service:  fields["service"],
		Status:   fields["status"],
		Remains:  fields["remains"],
		Currency: fields["currency"],
	}, nil
}

func (c *Client) post(ctx context.Context, action string, params url.Values) ([]byte, error) {
	form := url.Values{}
	for k, v := range params {
		form[k] = v
	}
	form.Set("key", c.apiKey)
	form.Set("action", action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrapf(ErrNetwork, "%s: build request: %v", action, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrNetwork, "%s: %v", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.Wrapf(ErrNetwork, "%s: read body: %v", action, err)
	}

	c.logger.Debug("Reseller API response",
		slog.String("action", action),
		slog.Int("status", resp.StatusCode),
		slog.String("body", truncate(body, 2048)))

	return body, nil
}

// begin открывает span и возвращает функцию, которая фиксирует результат
// вызова в span, метриках и логе.
func (c *Client) begin(ctx context.Context, action string) (context.Context, func(error)) {
	started := time.Now()
	ctx, span := c.tracer.Start(ctx, "reseller."+action,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("reseller.action", action)))

	return ctx, func(err error) {
		outcome := Outcome(err)
		span.SetAttributes(attribute.String("reseller.outcome", outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
			c.logger.Error("Reseller API call failed",
				slog.String("action", action),
				slog.String("outcome", outcome),
				slog.String("trace_id", span.SpanContext().TraceID().String()),
				slog.Any("error", err))
		}
		span.End()
		metrics.ObserveResellerCall(action, outcome, time.Since(started))
	}
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}

package checkout

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// SessionIDPlaceholder подставляется провайдером в success_url
const SessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

// zeroDecimalCurrencies валюты без дробной части: сумма передается как есть
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true, "krw": true, "mga": true,
	"pyg": true, "rwf": true, "ugx": true, "vnd": true, "vuv": true, "xaf": true, "xof": true, "xpf": true,
}

type sessionResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// StripeClient клиент Stripe Checkout. Повторы запросов отключены:
// создание сессии не идемпотентно.
type StripeClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

func NewStripeClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *StripeClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetBasicAuth(apiKey, "").
		SetHeader("Accept", "application/json")

	return &StripeClient{
		httpClient: client,
		logger:     logger,
	}
}

// ToMinorUnits переводит сумму в минимальные единицы валюты (центы для usd)
func ToMinorUnits(amount float64, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}

func (c *StripeClient) CreateSession(ctx context.Context, params domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {
	form := map[string]string{
		"mode":                                   "payment",
		"success_url":                            params.SuccessURL,
		"cancel_url":                             params.CancelURL,
		"line_items[0][quantity]":                "1",
		"line_items[0][price_data][currency]":    params.Currency,
		"line_items[0][price_data][unit_amount]": strconv.FormatInt(ToMinorUnits(params.Amount, params.Currency), 10),
		"line_items[0][price_data][product_data][name]": params.Name,
	}
	for key, value := range params.Metadata {
		form["metadata["+key+"]"] = value
	}

	c.logger.Info("Creating checkout session",
		zap.Float64("amount", params.Amount),
		zap.String("currency", params.Currency),
	)

	var result sessionResponse
	var apiErr errorResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&result).
		SetError(&apiErr).
		Post("/v1/checkout/sessions")
	if err != nil {
		c.logger.Error("Checkout session request failed", zap.Error(err))
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("create checkout session", resp, apiErr)
	}
	if result.ID == "" || result.URL == "" {
		return nil, fmt.Errorf("create checkout session: provider returned incomplete session")
	}

	c.logger.Info("Checkout session created", zap.String("session_id", result.ID))

	return &domain.CheckoutSession{
		SessionID: result.ID,
		URL:       result.URL,
	}, nil
}

func (c *StripeClient) GetSessionStatus(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error) {
	var result sessionResponse
	var apiErr errorResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", sessionID).
		SetResult(&result).
		SetError(&apiErr).
		Get("/v1/checkout/sessions/{id}")
	if err != nil {
		c.logger.Error("Checkout status request failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("get checkout status: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError("get checkout status", resp, apiErr)
	}

	return &domain.CheckoutStatus{
		Status:        result.Status,
		PaymentStatus: result.PaymentStatus,
		AmountTotal:   result.AmountTotal,
		Currency:      result.Currency,
	}, nil
}

func (c *StripeClient) apiError(op string, resp *resty.Response, apiErr errorResponse) error {
	message := apiErr.Error.Message
	if message == "" {
		message = strings.TrimSpace(resp.String())
	}

	c.logger.Error("Checkout provider returned error",
		zap.String("operation", op),
		zap.Int("status_code", resp.StatusCode()),
		zap.String("type", apiErr.Error.Type),
		zap.String("message", message),
	)

	return fmt.Errorf("%s: %s (status: %d)", op, message, resp.StatusCode())
}

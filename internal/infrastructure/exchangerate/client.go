package exchangerate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"ebay_pricer/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var ErrUnknownCurrency = errors.New("unknown currency")

const ratePrecision = 2

type latestResponse struct {
	Result             string             `json:"result"`
	ErrorType          string             `json:"error-type"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	Rates              map[string]float64 `json:"rates"`
}

// Client клиент open.er-api.com (/v6/latest/{base}).
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
}

func NewClient(
	baseURL string,
	timeout time.Duration,
	maxRetries uint64,
	transport http.RoundTripper,
) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		maxRetries: maxRetries,
	}
}

// Rate возвращает курс quote за единицу base, округлённый до двух знаков.
func (c *Client) Rate(ctx context.Context, base, quote string) (entity.ExchangeRate, error) {
	base = strings.ToUpper(base)
	quote = strings.ToUpper(quote)

	var latest latestResponse

	op := func() error {
		var err error

		latest, err = c.fetchLatest(ctx, base)

		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)

	if err := backoff.Retry(op, policy); err != nil {
		return entity.ExchangeRate{}, fmt.Errorf("fetch latest %s: %w", base, err)
	}

	raw, ok := latest.Rates[quote]
	if !ok || raw <= 0 {
		return entity.ExchangeRate{}, fmt.Errorf("%s: %w", quote, ErrUnknownCurrency)
	}

	updatedAt := time.Now()
	if latest.TimeLastUpdateUnix > 0 {
		updatedAt = time.Unix(latest.TimeLastUpdateUnix, 0)
	}

	return entity.ExchangeRate{
		Base:      base,
		Quote:     quote,
		Rate:      decimal.NewFromFloat(raw).Round(ratePrecision).InexactFloat64(),
		UpdatedAt: updatedAt.UTC(),
	}, nil
}

func (c *Client) fetchLatest(ctx context.Context, base string) (latestResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+base, http.NoBody)
	if err != nil {
		return latestResponse{}, backoff.Permanent(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return latestResponse{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return latestResponse{}, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return latestResponse{}, backoff.Permanent(fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	var latest latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&latest); err != nil {
		return latestResponse{}, backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}

	if latest.Result != "success" {
		if latest.ErrorType == "unsupported-code" {
			return latestResponse{}, backoff.Permanent(fmt.Errorf("%s: %w", base, ErrUnknownCurrency))
		}

		return latestResponse{}, backoff.Permanent(fmt.Errorf("upstream error: %s", latest.ErrorType))
	}

	return latest, nil
}

// Package mercadopago implements ports.ProviderClient with the MercadoPago SDK.
package mercadopago

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"federation-payments/config"
	"federation-payments/internal/core/domain"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/time/rate"
)

const (
	currencyARS = "ARS"
	// a cobro rarely sees more than a couple of attempts
	searchLimit = 10
)

type paymentAPI interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// Client resolves payments and opens checkouts. Every call waits on a
// shared limiter so monitor polling cannot exhaust the API quota.
type Client struct {
	payments    paymentAPI
	preferences preferenceCreator
	limiter     *rate.Limiter
	cfg         config.MercadoPagoConfig
	log         zerolog.Logger
}

// NewClient builds a client from the federation's access token.
func NewClient(cfg config.MercadoPagoConfig, log zerolog.Logger) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, errors.New("mercadopago access token is required")
	}
	mpCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return newClient(payment.NewClient(mpCfg), preference.NewClient(mpCfg), cfg, log), nil
}

func newClient(payments paymentAPI, preferences preferenceCreator, cfg config.MercadoPagoConfig, log zerolog.Logger) *Client {
	limit := rate.Limit(cfg.RequestsPerSec)
	if cfg.RequestsPerSec <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		payments:    payments,
		preferences: preferences,
		limiter:     rate.NewLimiter(limit, burst),
		cfg:         cfg,
		log:         log,
	}
}

// LookupPayment fetches a payment and maps its external reference back to
// the cobro id it was created for.
func (c *Client) LookupPayment(ctx context.Context, reference string) (*domain.ProviderPayment, error) {
	id, err := strconv.Atoi(reference)
	if err != nil {
		return nil, fmt.Errorf("payment reference %q is not numeric: %w", reference, domain.ErrProviderLookupFailed)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiting: %w: %w", domain.ErrProviderLookupFailed, err)
	}

	res, err := c.payments.Get(ctx, id)
	if err != nil {
		c.log.Warn().Err(err).Str("reference", reference).Msg("mercadopago payment lookup failed")
		return nil, fmt.Errorf("get payment %s: %w: %w", reference, domain.ErrProviderLookupFailed, err)
	}

	cobroID, err := strconv.ParseInt(res.ExternalReference, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("payment %s has external reference %q: %w",
			reference, res.ExternalReference, domain.ErrProviderLookupFailed)
	}

	return &domain.ProviderPayment{
		Reference: reference,
		CobroID:   cobroID,
		Status:    domain.NormalizeProviderStatus(res.Status),
		RawStatus: res.Status,
	}, nil
}

// SearchByExternalReference finds the newest payment whose external
// reference is the cobro id.
func (c *Client) SearchByExternalReference(ctx context.Context, cobroID int64) (*domain.ProviderPayment, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiting: %w: %w", domain.ErrProviderLookupFailed, err)
	}

	ref := strconv.FormatInt(cobroID, 10)
	res, err := c.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{
			"external_reference": ref,
			"sort":               "date_created",
			"criteria":           "desc",
		},
		Limit: searchLimit,
	})
	if err != nil {
		c.log.Warn().Err(err).Int64("cobro_id", cobroID).Msg("mercadopago payment search failed")
		return nil, fmt.Errorf("search payments of cobro %d: %w: %w", cobroID, domain.ErrProviderLookupFailed, err)
	}
	if res == nil || len(res.Results) == 0 {
		return nil, nil
	}

	newest := lo.MaxBy(res.Results, func(a, b payment.Response) bool {
		return a.DateCreated.After(b.DateCreated)
	})
	return &domain.ProviderPayment{
		Reference: strconv.Itoa(newest.ID),
		CobroID:   cobroID,
		Status:    domain.NormalizeProviderStatus(newest.Status),
		RawStatus: newest.Status,
	}, nil
}

// CreatePaymentIntent creates a Checkout Pro preference whose external
// reference is the cobro id.
func (c *Client) CreatePaymentIntent(ctx context.Context, cobro *domain.Cobro) (*domain.PaymentIntent, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiting: %w: %w", domain.ErrProviderLookupFailed, err)
	}

	res, err := c.preferences.Create(ctx, c.preferenceRequest(cobro))
	if err != nil {
		c.log.Warn().Err(err).Int64("cobro_id", cobro.ID).Msg("mercadopago preference create failed")
		return nil, fmt.Errorf("create preference for cobro %d: %w: %w", cobro.ID, domain.ErrProviderLookupFailed, err)
	}

	return &domain.PaymentIntent{
		PreferenceID: res.ID,
		RedirectURL:  res.InitPoint,
	}, nil
}

func (c *Client) preferenceRequest(cobro *domain.Cobro) preference.Request {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      cobro.Concept,
				Quantity:   1,
				UnitPrice:  float64(cobro.Amount) / 100,
				CurrencyID: currencyARS,
			},
		},
		ExternalReference: strconv.FormatInt(cobro.ID, 10),
		NotificationURL:   c.cfg.NotificationURL,
	}

	if c.cfg.SuccessURL != "" || c.cfg.FailureURL != "" || c.cfg.PendingURL != "" {
		req.BackURLs = &preference.BackURLsRequest{
			Success: c.cfg.SuccessURL,
			Failure: c.cfg.FailureURL,
			Pending: c.cfg.PendingURL,
		}
	}
	// auto_return is rejected by the API without a success URL
	if c.cfg.SuccessURL != "" {
		req.AutoReturn = "approved"
	}
	return req
}

package domain

import "strings"

// NotificationShape identifies which parameter layout a webhook used.
type NotificationShape string

const (
	ShapeIDTopic    NotificationShape = "id_topic"     // ?id=...&topic=...
	ShapeDataIDType NotificationShape = "data_id_type" // ?data.id=...&type=... (or JSON body)
)

// Notification is a normalized provider callback. It is never persisted.
type Notification struct {
	Reference string            `json:"reference"`
	Kind      string            `json:"kind"`
	Path      string            `json:"path"`
	Shape     NotificationShape `json:"shape"`
}

// IsPaymentKind reports whether the notification refers to a payment
// resource. Other topics (merchant_order, plan, ...) are acknowledged but
// do not carry a payment status.
func (n Notification) IsPaymentKind() bool {
	k := strings.ToLower(n.Kind)
	return k == "payment" || strings.HasPrefix(k, "payment.")
}

// DedupKey builds the key used to remember reconciled notifications.
func (n Notification) DedupKey() string {
	return strings.ToLower(n.Kind) + ":" + n.Reference
}

// ProviderPayment is what the provider reports about one of its payments.
type ProviderPayment struct {
	Reference string         `json:"reference"`
	CobroID   int64          `json:"cobro_id"`
	Status    ProviderStatus `json:"status"`
	RawStatus string         `json:"raw_status"`
}

// PaymentIntent is the result of creating a checkout at the provider.
type PaymentIntent struct {
	PreferenceID string `json:"preference_id"`
	RedirectURL  string `json:"redirect_url"`
}

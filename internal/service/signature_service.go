package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	errSignatureMissing   = errors.New("x-signature header missing")
	errSignatureMalformed = errors.New("x-signature header malformed")
	errSignatureMismatch  = errors.New("x-signature mismatch")
)

// WebhookSignatureService implements ports.WebhookVerifier for MercadoPago's
// x-signature header ("ts=<unix>,v1=<hex hmac>").
type WebhookSignatureService struct {
	secret []byte
}

// NewWebhookSignatureService creates a verifier. An empty secret disables
// verification.
func NewWebhookSignatureService(secret string) *WebhookSignatureService {
	return &WebhookSignatureService{secret: []byte(secret)}
}

// Enabled reports whether a webhook secret is configured.
func (s *WebhookSignatureService) Enabled() bool {
	return len(s.secret) > 0
}

// Sign computes the lowercase hex HMAC-SHA256 of the manifest.
func (s *WebhookSignatureService) Sign(manifest string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signatureHeader against the manifest built from the
// notification's data id and the x-request-id header.
func (s *WebhookSignatureService) Verify(dataID, requestID, signatureHeader string) error {
	if signatureHeader == "" {
		return errSignatureMissing
	}

	ts, v1 := ParseSignatureHeader(signatureHeader)
	if ts == "" || v1 == "" {
		return errSignatureMalformed
	}

	expected := s.Sign(BuildManifest(dataID, requestID, ts))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		return errSignatureMismatch
	}
	return nil
}

// ParseSignatureHeader extracts ts and v1 from "ts=...,v1=...".
func ParseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}
	return ts, v1
}

// BuildManifest builds the signed template
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" leaving out empty parts.
// Alphanumeric data ids are signed in lowercase.
func BuildManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	if ts != "" {
		b.WriteString("ts:" + ts + ";")
	}
	return b.String()
}

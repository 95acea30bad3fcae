package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildManifest(t *testing.T) {
	assert.Equal(t, "id:999;request-id:req-1;ts:1704908010;", BuildManifest("999", "req-1", "1704908010"))
	assert.Equal(t, "id:abc;ts:1;", BuildManifest("ABC", "", "1"))
	assert.Equal(t, "", BuildManifest("", "", ""))
}

func TestParseSignatureHeader(t *testing.T) {
	ts, v1 := ParseSignatureHeader("ts=1704908010,v1=618c853")
	assert.Equal(t, "1704908010", ts)
	assert.Equal(t, "618c853", v1)

	ts, v1 = ParseSignatureHeader(" v1=abc , ts=5")
	assert.Equal(t, "5", ts)
	assert.Equal(t, "abc", v1)

	ts, v1 = ParseSignatureHeader("garbage")
	assert.Empty(t, ts)
	assert.Empty(t, v1)
}

func TestWebhookSignatureService_Verify(t *testing.T) {
	svc := NewWebhookSignatureService("whsec")
	require.True(t, svc.Enabled())

	sig := svc.Sign(BuildManifest("999", "req-1", "1704908010"))
	assert.Regexp(t, `^[0-9a-f]{64}$`, sig)

	header := "ts=1704908010,v1=" + sig
	assert.NoError(t, svc.Verify("999", "req-1", header))

	assert.ErrorIs(t, svc.Verify("1000", "req-1", header), errSignatureMismatch, "other data id")
	assert.ErrorIs(t, svc.Verify("999", "req-2", header), errSignatureMismatch, "other request id")
	assert.ErrorIs(t, svc.Verify("999", "req-1", "ts=1704908011,v1="+sig), errSignatureMismatch, "other ts")
	assert.ErrorIs(t, svc.Verify("999", "req-1", ""), errSignatureMissing)
	assert.ErrorIs(t, svc.Verify("999", "req-1", "v1="+sig), errSignatureMalformed)
}

func TestWebhookSignatureService_WrongSecret(t *testing.T) {
	signer := NewWebhookSignatureService("secret-a")
	verifier := NewWebhookSignatureService("secret-b")

	sig := signer.Sign(BuildManifest("1", "r", "2"))
	assert.Error(t, verifier.Verify("1", "r", "ts=2,v1="+sig))
}

func TestWebhookSignatureService_Disabled(t *testing.T) {
	assert.False(t, NewWebhookSignatureService("").Enabled())
}

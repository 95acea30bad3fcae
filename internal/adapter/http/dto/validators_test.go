package dto

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStruct_TrimsAndStripsControl(t *testing.T) {
	req := GenerateLinkRequest{Concept: "  Cuota\x00 Marzo\n "}
	SanitizeStruct(&req)
	assert.Equal(t, "Cuota Marzo", req.Concept)
}

func TestSanitizeStruct_KeepsMarkupAndAccents(t *testing.T) {
	req := CreateCobroRequest{Concept: "Inscripción <Sub-15> & Mayores"}
	SanitizeStruct(&req)
	assert.Equal(t, "Inscripción <Sub-15> & Mayores", req.Concept)
}

func TestSanitizeStruct_IgnoresNonStructPointer(t *testing.T) {
	s := " x "
	SanitizeStruct(s)
	SanitizeStruct(&s)
	assert.Equal(t, " x ", s)
}

func TestCobroStateValidator(t *testing.T) {
	tests := []struct {
		name  string
		req   ForceStateRequest
		valid bool
	}{
		{"valid", ForceStateRequest{Expected: "Pendiente", Next: "Anulado"}, true},
		{"lowercase", ForceStateRequest{Expected: "pendiente", Next: "Anulado"}, false},
		{"unknown", ForceStateRequest{Expected: "Pendiente", Next: "Reembolsado"}, false},
		{"missing", ForceStateRequest{Expected: "Pendiente"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestToggleLinkRequest_RequiresActive(t *testing.T) {
	var req ToggleLinkRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Error(t, binding.Validator.ValidateStruct(&req))

	require.NoError(t, json.Unmarshal([]byte(`{"active":false}`), &req))
	assert.NoError(t, binding.Validator.ValidateStruct(&req))
}

func TestWebhookBody_FlexibleID(t *testing.T) {
	tests := []struct {
		body string
		want FlexibleID
	}{
		{`{"type":"payment","data":{"id":"999"}}`, "999"},
		{`{"type":"payment","data":{"id":999}}`, "999"},
		{`{"type":"payment","data":{"id":null}}`, ""},
		{`{"type":"payment"}`, ""},
	}

	for _, tt := range tests {
		var body WebhookBody
		require.NoError(t, json.Unmarshal([]byte(tt.body), &body), tt.body)
		assert.Equal(t, tt.want, body.Data.ID, tt.body)
		assert.Equal(t, "payment", body.Type)
	}
}

func TestWebhookBody_RejectsFractionalID(t *testing.T) {
	var body WebhookBody
	assert.Error(t, json.Unmarshal([]byte(`{"type":"payment","data":{"id":9.5}}`), &body))
}

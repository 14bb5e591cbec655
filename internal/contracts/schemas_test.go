package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEvent_RecordChanged(t *testing.T) {
	valid := []byte(`{
		"kind": "building",
		"record_id": "BLD-042",
		"action": "updated",
		"occurred_at": "2026-08-28T10:15:00Z"
	}`)
	require.NoError(t, ValidateEvent("record_changed", valid))
}

func TestValidateEvent_OccurredAtIsOptional(t *testing.T) {
	assert.NoError(t, ValidateEvent("record_changed",
		[]byte(`{"kind": "parcel", "record_id": "P-1", "action": "deleted"}`)))
}

func TestValidateEvent_RejectsBadPayloads(t *testing.T) {
	cases := map[string][]byte{
		"unknown kind":      []byte(`{"kind": "warehouse", "record_id": "W-1", "action": "created"}`),
		"unknown action":    []byte(`{"kind": "parcel", "record_id": "P-1", "action": "archived"}`),
		"missing record_id": []byte(`{"kind": "parcel", "action": "created"}`),
		"empty record_id":   []byte(`{"kind": "parcel", "record_id": "", "action": "created"}`),
		"extra property":    []byte(`{"kind": "parcel", "record_id": "P-1", "action": "created", "actor": "admin"}`),
		"not json":          []byte(`kind=parcel`),
	}
	for name, payload := range cases {
		assert.Error(t, ValidateEvent("record_changed", payload), name)
	}
}

func TestValidateEvent_UnknownSchema(t *testing.T) {
	err := ValidateEvent("listing_viewed", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema registered")
}

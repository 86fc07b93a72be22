package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstructed(state InvoiceState) *Invoice {
	now := time.Now().UTC()
	return ReconstructInvoice(20, "INV/2026/0042", 7, state, decimal.RequireFromString("150.00"), now, now)
}

func TestInvoiceState_IsValid(t *testing.T) {
	for _, state := range []InvoiceState{InvoiceStateDraft, InvoiceStateOpen, InvoiceStatePaid, InvoiceStateCancel} {
		assert.True(t, state.IsValid(), string(state))
	}
	assert.False(t, InvoiceState("posted").IsValid())
	assert.False(t, InvoiceState("").IsValid())
}

func TestInvoice_IsOpen(t *testing.T) {
	assert.True(t, reconstructed(InvoiceStateOpen).IsOpen())
	assert.False(t, reconstructed(InvoiceStateDraft).IsOpen())
	assert.False(t, reconstructed(InvoiceStatePaid).IsOpen())
}

func TestInvoice_MarkPaid(t *testing.T) {
	inv := reconstructed(InvoiceStateOpen)

	require.NoError(t, inv.MarkPaid())
	assert.Equal(t, InvoiceStatePaid, inv.State())

	assert.Error(t, inv.MarkPaid(), "paying twice is rejected")
}

func TestInvoice_MarkPaid_RequiresOpenState(t *testing.T) {
	for _, state := range []InvoiceState{InvoiceStateDraft, InvoiceStateCancel} {
		t.Run(string(state), func(t *testing.T) {
			inv := reconstructed(state)
			assert.Error(t, inv.MarkPaid())
			assert.Equal(t, state, inv.State())
		})
	}
}

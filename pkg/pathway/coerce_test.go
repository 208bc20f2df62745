package pathway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArgsRoundTrip(t *testing.T) {
	coerce := DecodeArgs[paymentArgs]()

	got, err := coerce(MapArgs{
		"amount":    int64(42),
		"recipient": "bc1q...",
	})
	require.NoError(t, err)

	want := paymentArgs{Amount: 42, Recipient: "bc1q..."}
	assert.Equal(t, want, got, "decoding a well-formed envelope equals direct construction")
}

func TestDecodeArgsPartialEnvelope(t *testing.T) {
	coerce := DecodeArgs[paymentArgs]()

	got, err := coerce(MapArgs{"amount": int64(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Amount)
	assert.Empty(t, got.Recipient)
}

func TestDecodeArgsUnknownKey(t *testing.T) {
	coerce := DecodeArgs[paymentArgs]()

	_, err := coerce(MapArgs{"amount": int64(1), "surprise": true})
	assert.Error(t, err, "unknown envelope keys must fail loudly")
}

func TestDecodeArgsTypeMismatch(t *testing.T) {
	coerce := DecodeArgs[paymentArgs]()

	_, err := coerce(MapArgs{"amount": "a lot"})
	assert.Error(t, err)
}

func TestCoercionErrorUnwrap(t *testing.T) {
	coerce := DecodeArgs[paymentArgs]()
	_, inner := coerce(MapArgs{"amount": "a lot"})
	require.Error(t, inner)

	err := &CoercionError{Pathway: "pay", Err: inner}
	assert.ErrorContains(t, err, `pathway "pay"`)
	assert.Equal(t, inner, err.Unwrap())
}

package pathway

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/covenant/pkg/domain"
	"github.com/aretw0/covenant/pkg/schema"
)

type paymentArgs struct {
	Amount    int64  `mapstructure:"amount"`
	Recipient string `mapstructure:"recipient"`
}

func payBody(v *vault, _ domain.Context, arg paymentArgs) (domain.TemplateSeq, error) {
	return domain.Templates(arg), nil
}

func TestNewUpdatable(t *testing.T) {
	u := NewUpdatable("pay", DecodeArgs[paymentArgs](), payBody)

	assert.Equal(t, "pay", u.Name())
	assert.Empty(t, u.Guards())
	assert.Empty(t, u.Gates())
	assert.Nil(t, u.Schema(), "schema is absent unless the pathway opts into exposure")
}

func TestUpdatableCall(t *testing.T) {
	u := NewUpdatable("pay", DecodeArgs[paymentArgs](), payBody)

	seq, err := u.Call(&vault{}, nil, MapArgs{
		"amount":    int64(500),
		"recipient": "bc1q...",
	})
	require.NoError(t, err)

	got := slices.Collect(seq)
	require.Len(t, got, 1)
	assert.Equal(t, paymentArgs{Amount: 500, Recipient: "bc1q..."}, got[0])
}

func TestUpdatableCoercionFailure(t *testing.T) {
	invoked := false
	u := NewUpdatable("pay", DecodeArgs[paymentArgs](), func(v *vault, ctx domain.Context, arg paymentArgs) (domain.TemplateSeq, error) {
		invoked = true
		return domain.NoTemplates(), nil
	})

	_, err := u.Call(&vault{}, nil, MapArgs{"amount": "not a number"})
	require.Error(t, err)

	var cerr *CoercionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "pay", cerr.Pathway)
	assert.False(t, invoked, "body must not run when coercion fails")
}

func TestUpdatableCheckArgs(t *testing.T) {
	u := NewUpdatable("pay", DecodeArgs[paymentArgs](), payBody)

	assert.NoError(t, u.CheckArgs(MapArgs{"amount": int64(1)}))

	err := u.CheckArgs(MapArgs{"unknown_field": true})
	var cerr *CoercionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "pay", cerr.Pathway)
}

func TestUpdatableExposeSchema(t *testing.T) {
	cache := schema.NewCache()
	u := NewUpdatable("pay", DecodeArgs[paymentArgs](), payBody,
		ExposeSchema[*vault](cache),
	)

	require.NotNil(t, u.Schema())
	assert.Same(t, u.Schema(), schema.For[paymentArgs](cache),
		"declaration shares the cached handle")
	assert.Equal(t, 1, cache.Len())
}

func TestUpdatableGuardsAndGates(t *testing.T) {
	g := NewCachedGuard("owner_key", ownerClause)
	gate := NewGate("always", func(*vault, domain.Context) domain.GateDecision {
		return domain.GateInclude
	})

	u := NewUpdatable("pay", DecodeArgs[paymentArgs](), payBody,
		GuardedBy(g),
		CompileIf(gate),
	)

	require.Len(t, u.Guards(), 1)
	assert.Equal(t, "owner_key", u.Guards()[0].Name())
	require.Len(t, u.Gates(), 1)
	assert.Equal(t, "always", u.Gates()[0].Name())
}

func TestUpdatableCustomCoercion(t *testing.T) {
	// A contract may fix a non-map envelope; coercion narrows it per pathway.
	type envelope struct {
		Kind  string
		Value int64
	}
	coerce := func(e envelope) (paymentArgs, error) {
		if e.Kind != "payment" {
			return paymentArgs{}, errors.New("wrong kind")
		}
		return paymentArgs{Amount: e.Value}, nil
	}

	u := NewUpdatable("pay", coerce, payBody)

	seq, err := u.Call(&vault{}, nil, envelope{Kind: "payment", Value: 7})
	require.NoError(t, err)
	got := slices.Collect(seq)
	require.Len(t, got, 1)
	assert.Equal(t, paymentArgs{Amount: 7}, got[0])

	_, err = u.Call(&vault{}, nil, envelope{Kind: "other"})
	var cerr *CoercionError
	require.ErrorAs(t, err, &cerr)
}

func TestNewUpdatableNilCoercePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewUpdatable[*vault, MapArgs, paymentArgs]("broken", nil, payBody)
	})
}

func TestNewUpdatableNilBodyPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewUpdatable[*vault, MapArgs, paymentArgs]("broken", DecodeArgs[paymentArgs](), nil)
	})
}

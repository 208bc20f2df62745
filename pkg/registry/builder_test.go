package registry

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/covenant/pkg/pathway"
)

func TestBuilderRejectsDuplicateNames(t *testing.T) {
	_, err := NewBuilder[*vault, pathway.MapArgs]().
		AddTransition(pathway.NewTransition("redeem", redeemBody)).
		AddTransition(pathway.NewTransition("redeem", redeemBody)).
		Build()

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "redeem", verr.Name)
	assert.Equal(t, "duplicate name", verr.Reason)
}

func TestBuilderAllowsSameNameAcrossFlavors(t *testing.T) {
	// Names are unique within a flavor list, not across lists.
	_, err := NewBuilder[*vault, pathway.MapArgs]().
		AddTransition(pathway.NewTransition("close", redeemBody)).
		AddAbsentUpdatable("close").
		Build()

	assert.NoError(t, err)
}

func TestBuilderRejectsZeroValueTransition(t *testing.T) {
	// A struct literal bypasses NewTransition; Build still refuses the
	// bodyless present declaration.
	var zero pathway.Transition[*vault]
	_, err := NewBuilder[*vault, pathway.MapArgs]().
		AddTransition(zero).
		Build()

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name is required", verr.Reason)
}

func TestBuilderRejectsNilUpdatable(t *testing.T) {
	_, err := NewBuilder[*vault, pathway.MapArgs]().
		AddUpdatable(nil).
		Build()

	require.Error(t, err)
}

func TestBuilderRejectsEmptyAbsentName(t *testing.T) {
	_, err := NewBuilder[*vault, pathway.MapArgs]().
		AddAbsentTransition("").
		Build()

	require.Error(t, err)
}

func TestBuilderAggregatesErrors(t *testing.T) {
	var zero pathway.Transition[*vault]
	_, err := NewBuilder[*vault, pathway.MapArgs]().
		AddAbsentTransition("dup").
		AddAbsentTransition("dup").
		AddTransition(zero).
		Build()

	require.Error(t, err)
	errs := ValidationErrors(err)
	assert.Len(t, errs, 2)
}

func TestValidationErrorsNonAggregate(t *testing.T) {
	assert.Nil(t, ValidationErrors(assert.AnError))
}

func TestBuilderLogsRegistrations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := NewBuilder[*vault, pathway.MapArgs](WithLogger[*vault, pathway.MapArgs](logger)).
		AddTransition(pathway.NewTransition("redeem", redeemBody)).
		AddAbsentTransition("recover").
		Build()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "pathway registered")
	assert.Contains(t, out, "name=redeem")
	assert.Contains(t, out, "present=false")
}

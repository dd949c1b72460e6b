package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx = ContextWithCorrelationID(context.Background(), "Ab12Cd")
	assert.Equal(t, "Ab12Cd", GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_AddsCorrelationField(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	ctx := ContextWithCorrelationID(context.Background(), "cycle1")
	ForContext(ctx).Info("ciclo")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "cycle1", entry.Data[correlationIDField])
	assert.Equal(t, logrus.InfoLevel, entry.Level)
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	t.Run("desenvolvimento mantém apenas campos relevantes", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")

		L.WithFields(Fields{"refresh_sales": 3, "country": "Atlantis", "internal": "x"}).Warn("filtrado")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, 3, entry.Data["refresh_sales"])
		assert.Equal(t, "Atlantis", entry.Data["country"])
		assert.NotContains(t, entry.Data, "internal")
	})

	t.Run("produção mantém todos os campos", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		L.WithField("internal", "x").Info("completo")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "x", entry.Data["internal"])
	})
}

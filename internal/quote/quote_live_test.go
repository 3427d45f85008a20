package quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/areuok/areuok/internal/config"
	"github.com/areuok/areuok/internal/testutil"
)

func TestFetch_LiveAPI(t *testing.T) {
	testutil.SkipNetworkTests(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.DefaultQuoteConfig()
	cfg.Timeout = 10 * time.Second
	q, err := New(cfg).Fetch(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, q.Text)
}

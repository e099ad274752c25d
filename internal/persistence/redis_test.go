package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// An unconfigured wrapper must degrade, never fail: the catalog treats every
// helper miss as a plain database read.
func TestRedis_NilSafe(t *testing.T) {
	ctx := context.Background()
	var r *Redis

	assert.False(t, r.Available())
	assert.Error(t, r.Ping(ctx))
	r.Close()

	var out []string
	assert.False(t, r.FetchJSON(ctx, "k", &out))
	assert.NoError(t, r.StoreJSON(ctx, "k", []string{"a"}, time.Minute))
	assert.Zero(t, r.Counter(ctx, "k"))
	assert.NoError(t, r.Bump(ctx, "k"))
}

func TestRedis_EmptyClient(t *testing.T) {
	r := &Redis{}
	assert.False(t, r.Available())
	assert.Error(t, r.Ping(context.Background()))
}

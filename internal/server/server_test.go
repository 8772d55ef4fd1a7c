package server

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRun(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	grp, ctx := errgroup.WithContext(ctx)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	addr, err := Run(ctx, grp, handler, "127.0.0.1:0")
	require.NoError(t, err)

	resp, err := http.Get("http://" + addr.String() + "/")
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, grp.Wait())
}

func TestRunBadAddress(t *testing.T) {
	t.Parallel()

	grp, ctx := errgroup.WithContext(t.Context())
	_, err := Run(ctx, grp, http.NotFoundHandler(), "256.256.256.256:http")
	require.Error(t, err)
}

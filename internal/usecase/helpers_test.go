package usecase_test

import (
	"context"
	"io"
	"testing"

	"supplyconnect/internal/domain/model"
	"supplyconnect/internal/usecase"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	assert.Equal(t, msg, he.Message)
}

// 送ったメールを覚えておく
type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendConfirmation(_ context.Context, email string, token string) error {
	f.sent = append(f.sent, email+"|"+token)
	return f.err
}

type fakeCatalogCache struct {
	entries     []model.CatalogEntry
	hit         bool
	sets        int
	invalidated int
}

func (f *fakeCatalogCache) Get(context.Context) ([]model.CatalogEntry, bool) {
	return f.entries, f.hit
}

func (f *fakeCatalogCache) Set(_ context.Context, entries []model.CatalogEntry) error {
	f.sets++
	f.entries = entries
	return nil
}

func (f *fakeCatalogCache) Invalidate(context.Context) error {
	f.invalidated++
	f.hit = false
	return nil
}

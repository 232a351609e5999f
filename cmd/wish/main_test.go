package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishgallery/internal/config"
	"wishgallery/internal/gift"
	"wishgallery/internal/lang"
	"wishgallery/internal/logging"
	"wishgallery/internal/session"
)

// isolate clears provider env vars and runs the test from an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY", "WISH_MODEL", "WISH_LANGUAGE", "WISH_AUDIO_TRACK"} {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	verbose, langFlag, askJSON, configForce = false, "", false, false
	configPath, timeout = config.DefaultPath, 30*time.Second
	t.Cleanup(logging.Disable)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAsk_OfflineFallback(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "ask", "--config", filepath.Join(dir, "config.yaml"), "I wish for financial freedom")
	require.NoError(t, err)

	assert.Contains(t, out, "The Wish Gallery")
	for _, g := range gift.Fallback(lang.Primary) {
		assert.Contains(t, out, g.Emoji+" "+g.Title)
		assert.Contains(t, out, g.Message)
	}
}

func TestAsk_JSONSecondary(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "ask", "--json", "--lang", "zh", "--config", filepath.Join(dir, "config.yaml"), "我希望健康")
	require.NoError(t, err)

	var res askResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "我希望健康", res.Wish)
	assert.Equal(t, lang.Secondary, res.Language)
	assert.Equal(t, gift.Fallback(lang.Secondary), res.Gifts)
	assert.NotEmpty(t, res.Session)
}

func TestAsk_BlankWish(t *testing.T) {
	dir := isolate(t)
	_, err := run(t, "ask", "--config", filepath.Join(dir, "config.yaml"), "  ")
	assert.ErrorIs(t, err, errBlankWish)
}

func TestAsk_UnknownLanguage(t *testing.T) {
	dir := isolate(t)
	_, err := run(t, "ask", "--lang", "fr", "--config", filepath.Join(dir, "config.yaml"), "wish")
	require.Error(t, err)
	assert.ErrorIs(t, err, lang.ErrUnknownLanguage)
}

func TestAsk_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  reveal_delay: soon\n"), 0600))

	_, err := run(t, "ask", "--config", path, "wish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reveal_delay")
}

func TestAskHelper(t *testing.T) {
	gifts := []gift.Message{
		{Title: "A", Message: "a", Emoji: "🅰"},
		{Title: "B", Message: "b", Emoji: "🅱"},
		{Title: "C", Message: "c", Emoji: "©"},
	}
	ctrl := session.New(session.GeneratorFunc(func(context.Context, string, lang.Language) []gift.Message {
		return gifts
	}), session.WithPacer(session.NoPacer{}))
	defer ctrl.Close()

	snap, err := ask(context.Background(), ctrl, "wish")
	require.NoError(t, err)
	assert.Equal(t, gifts, snap.Gifts)
	assert.Equal(t, "wish", snap.Wish)

	var buf bytes.Buffer
	require.NoError(t, printGifts(&buf, snap, false))
	assert.Contains(t, buf.String(), "2. 🅱 B\n   b\n")
}

func TestAskHelper_DeadlineYieldsFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := session.New(session.GeneratorFunc(func(ctx context.Context, _ string, l lang.Language) []gift.Message {
		<-ctx.Done()
		return gift.Fallback(l)
	}), session.WithPacer(session.DelayPacer(time.Hour)))
	defer ctrl.Close()

	snap, err := ask(ctx, ctrl, "wish")
	require.NoError(t, err)
	assert.Equal(t, session.StateOpening, snap.State)
	assert.Equal(t, gift.Fallback(lang.Primary), snap.Gifts)
}

func TestAskHelper_MisbehavingGenerator(t *testing.T) {
	ctrl := session.New(session.GeneratorFunc(func(context.Context, string, lang.Language) []gift.Message {
		return nil
	}), session.WithPacer(session.NoPacer{}))
	defer ctrl.Close()

	_, err := ask(context.Background(), ctrl, "wish")
	assert.Error(t, err)
}

func TestAsk_SlowProviderTimesOutToFallback(t *testing.T) {
	dir := isolate(t)

	stop := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-stop:
		}
	}))
	defer srv.Close()
	defer close(stop)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini:\n  base_url: "+srv.URL+"\n"), 0600))
	t.Setenv("GEMINI_API_KEY", "test-key")

	start := time.Now()
	out, err := run(t, "ask", "--timeout", "200ms", "--config", path, "I wish for financial freedom")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)

	for _, g := range gift.Fallback(lang.Primary) {
		assert.Contains(t, out, g.Emoji+" "+g.Title)
		assert.Contains(t, out, g.Message)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".wish", "config.yaml")

	out, err := run(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = run(t, "config", "init", "--config", path)
	assert.Error(t, err, "refuses to overwrite")

	_, err = run(t, "config", "init", "--force", "--config", path)
	assert.NoError(t, err)

	t.Setenv("GEMINI_API_KEY", "super-secret")
	out, err = run(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<redacted>")
	assert.NotContains(t, out, "super-secret")
	assert.Contains(t, out, config.DefaultModel)
}

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := NewMain().Run(context.Background(), []string{}, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no arguments provided")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("rejects a timeout below the minimum", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := NewMain().Run(context.Background(), []string{"urls.txt", "-t", "1s"}, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid settings")
	})

	t.Run("rejects an unknown extractor", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := NewMain().Run(context.Background(), []string{"urls.txt", "--extractor", "magic"}, stdout, stderr)
		require.Error(t, err)
	})

	t.Run("end to end against a local server", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><head><title>Example Page</title></head><body><nav>menu</nav><p>Actual content here.</p></body></html>`))
		}))
		defer srv.Close()

		dir := t.TempDir()
		input := filepath.Join(dir, "urls.txt")
		require.NoError(t, os.WriteFile(input, []byte(srv.URL+"\n"), 0o644))
		output := filepath.Join(dir, "out.xlsx")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := NewMain().Run(context.Background(), []string{input, "-o", output, "-d", "0s"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "1 ok, 0 failed")

		f, err := excelize.OpenFile(output)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(f.GetSheetName(0))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "input_url", rows[0][0])
		assert.Equal(t, srv.URL, rows[1][0])
		assert.Equal(t, "Example Page", rows[1][3])
		assert.Contains(t, rows[1][4], "Actual content here.")
	})
}

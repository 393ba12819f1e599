package bodytext_test

import (
	"testing"

	"github.com/fwojciec/bodytext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_Strings(t *testing.T) {
	t.Parallel()

	t.Run("renders successful row", func(t *testing.T) {
		t.Parallel()

		row := bodytext.Row{
			InputURL:   "http://example.com",
			FinalURL:   "https://example.com/",
			HTTPStatus: 200,
			Title:      "Example",
			BodyText:   "Hello",
			BodyLen:    5,
		}

		cells := row.Strings()
		require.Len(t, cells, len(bodytext.ExportColumns))
		assert.Equal(t, []string{"http://example.com", "https://example.com/", "200", "Example", "Hello", "5", ""}, cells)
	})

	t.Run("renders failed row with empty status", func(t *testing.T) {
		t.Parallel()

		row := bodytext.Row{
			InputURL: "http://bad.invalid",
			Error:    "connection refused",
		}

		cells := row.Strings()
		assert.Equal(t, []string{"http://bad.invalid", "", "", "", "", "0", "connection refused"}, cells)
	})
}

func TestRow_Failed(t *testing.T) {
	t.Parallel()

	assert.False(t, bodytext.Row{InputURL: "http://a"}.Failed())
	assert.True(t, bodytext.Row{InputURL: "http://a", Error: "timeout"}.Failed())
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts populated run", func(t *testing.T) {
		t.Parallel()

		run := &bodytext.Run{Rows: []bodytext.Row{{InputURL: "http://a"}}}
		require.NoError(t, run.Validate())
	})

	t.Run("rejects empty run", func(t *testing.T) {
		t.Parallel()

		err := (&bodytext.Run{}).Validate()
		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(err))
	})

	t.Run("rejects row without input URL", func(t *testing.T) {
		t.Parallel()

		run := &bodytext.Run{Rows: []bodytext.Row{{}}}
		err := run.Validate()
		assert.Equal(t, bodytext.EINVALID, bodytext.ErrorCode(err))
	})
}

func TestDedupURLs(t *testing.T) {
	t.Parallel()

	t.Run("preserves first-occurrence order", func(t *testing.T) {
		t.Parallel()

		got := bodytext.DedupURLs([]string{"http://a", "http://b", "http://a"})
		assert.Equal(t, []string{"http://a", "http://b"}, got)
	})

	t.Run("trims entries and drops blanks", func(t *testing.T) {
		t.Parallel()

		got := bodytext.DedupURLs([]string{" http://a ", "", "  ", "http://a"})
		assert.Equal(t, []string{"http://a"}, got)
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, bodytext.DedupURLs(nil))
	})
}

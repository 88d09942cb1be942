package newsdesk_test

import (
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/stretchr/testify/assert"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts url request", func(t *testing.T) {
		t.Parallel()

		req := &newsdesk.Request{Type: newsdesk.InputURL, Content: "https://example.com/news"}

		assert.NoError(t, req.Validate())
		assert.True(t, req.IsURL())
	})

	t.Run("accepts text request", func(t *testing.T) {
		t.Parallel()

		req := &newsdesk.Request{Type: newsdesk.InputText, Content: "some article"}

		assert.NoError(t, req.Validate())
		assert.False(t, req.IsURL())
	})

	t.Run("rejects missing type", func(t *testing.T) {
		t.Parallel()

		req := &newsdesk.Request{Content: "some article"}

		err := req.Validate()
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
		assert.Contains(t, newsdesk.ErrorMessage(err), "type required")
	})

	t.Run("rejects missing content", func(t *testing.T) {
		t.Parallel()

		req := &newsdesk.Request{Type: newsdesk.InputText}

		err := req.Validate()
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
		assert.Contains(t, newsdesk.ErrorMessage(err), "content required")
	})

	t.Run("rejects whitespace-only content", func(t *testing.T) {
		t.Parallel()

		req := &newsdesk.Request{Type: newsdesk.InputURL, Content: "   "}

		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(req.Validate()))
	})

	t.Run("unknown type is treated as text", func(t *testing.T) {
		t.Parallel()

		req := &newsdesk.Request{Type: "markdown", Content: "some article"}

		assert.NoError(t, req.Validate())
		assert.False(t, req.IsURL())
	})
}

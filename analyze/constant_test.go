package analyze_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("returns the sample analysis for any article", func(t *testing.T) {
		t.Parallel()

		g := analyze.NewConstantGenerator()

		got, err := g.Generate(context.Background(), &newsdesk.Article{Title: "x", Body: "y"})

		require.NoError(t, err)
		assert.Len(t, got.Captions, 8)
		assert.Len(t, got.Questions, 8)
		assert.NotEmpty(t, got.Commentary.SelectionRationale)
		assert.NotEmpty(t, got.Commentary.QuestionRationale)
		assert.NotEmpty(t, got.Commentary.Observations)
		assert.NotEmpty(t, got.Commentary.StandardsNote)
	})

	t.Run("returns a fresh copy on every call", func(t *testing.T) {
		t.Parallel()

		g := analyze.NewConstantGenerator()

		first, err := g.Generate(context.Background(), &newsdesk.Article{})
		require.NoError(t, err)
		original := first.Captions[0]
		first.Captions[0] = "changed"
		first.Questions = nil

		second, err := g.Generate(context.Background(), &newsdesk.Article{})
		require.NoError(t, err)

		assert.Equal(t, original, second.Captions[0])
		assert.Len(t, second.Questions, 8)
	})
}

package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "") // nil client ok for this test

	_, err := completer.Complete(context.Background(), newsdesk.Prompt{System: "system"})

	require.Error(t, err)
	assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
	assert.Contains(t, newsdesk.ErrorMessage(err), "prompt required")
}

func TestNewCompleter_DefaultsModel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gemini.DefaultModel, gemini.NewCompleter(nil, "").Model())
	assert.Equal(t, "gemini-2.5-pro", gemini.NewCompleter(nil, "gemini-2.5-pro").Model())
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("You are a news analyst.")

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are a news analyst.", config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_OmitsEmptySystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	assert.Nil(t, config.SystemInstruction)
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
}

func TestBuildConfig_SetsMaxOutputTokens(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	assert.Equal(t, int32(2000), config.MaxOutputTokens)
}

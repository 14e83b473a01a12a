package gemini

import (
	"context"
	"errors"
	"testing"

	"penguin-pet/internal/ports/completion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	model  string
	config *genai.GenerateContentConfig
	user   string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.config = model, config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.user = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(s, genai.RoleModel)}},
	}
}

func TestComplete_UsesSystemInstruction(t *testing.T) {
	fg := &fakeGenerator{resp: textResponse("  Squawk!  ")}
	c := newWithGenerator(fg, Config{})

	text, err := c.Complete(context.Background(), "be a penguin", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Squawk!", text)

	assert.Equal(t, DefaultModel, fg.model)
	assert.Equal(t, "hello", fg.user)
	require.NotNil(t, fg.config.SystemInstruction)
	assert.Equal(t, "be a penguin", fg.config.SystemInstruction.Parts[0].Text)
	assert.Equal(t, int32(DefaultMaxTokens), fg.config.MaxOutputTokens)
	require.NotNil(t, fg.config.Temperature)
	assert.InDelta(t, DefaultTemperature, *fg.config.Temperature, 1e-6)
}

func TestComplete_Errors(t *testing.T) {
	c := newWithGenerator(&fakeGenerator{err: errors.New("quota")}, Config{})
	_, err := c.Complete(context.Background(), "s", "u")
	assert.Error(t, err)

	c = newWithGenerator(&fakeGenerator{resp: textResponse("  ")}, Config{})
	_, err = c.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, completion.ErrEmpty)

	c = newWithGenerator(&fakeGenerator{}, Config{})
	_, err = c.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, completion.ErrEmpty)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestComplete_ZeroTemperatureIsKept(t *testing.T) {
	fg := &fakeGenerator{resp: textResponse("ok")}
	zero := 0.0
	c := newWithGenerator(fg, Config{Temperature: &zero})

	_, err := c.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	require.NotNil(t, fg.config.Temperature)
	assert.Zero(t, *fg.config.Temperature)
}

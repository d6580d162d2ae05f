package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"google.golang.org/genai"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return s.response, s.err
}

func TestScoreHappyPath(t *testing.T) {
	scorer := NewScorer(&stubGenerator{response: `{"score": 87, "reasoning": "התאמה מצוינת"}`}, nil)

	analysis := scorer.Score(context.Background(), "job", "resume")

	assert.Equal(t, 87, analysis.Score)
	assert.Equal(t, "התאמה מצוינת", analysis.Reasoning)
}

func TestScoreClampsOutOfRange(t *testing.T) {
	t.Run("above 100", func(t *testing.T) {
		scorer := NewScorer(&stubGenerator{response: `{"score": 140, "reasoning": "x"}`}, nil)
		assert.Equal(t, 100, scorer.Score(context.Background(), "j", "r").Score)
	})

	t.Run("negative", func(t *testing.T) {
		scorer := NewScorer(&stubGenerator{response: `{"score": -5, "reasoning": "x"}`}, nil)
		assert.Equal(t, 0, scorer.Score(context.Background(), "j", "r").Score)
	})
}

func TestScoreStripsMarkdownFences(t *testing.T) {
	scorer := NewScorer(&stubGenerator{response: "```json\n{\"score\": 61, \"reasoning\": \"ok\"}\n```"}, nil)

	analysis := scorer.Score(context.Background(), "job", "resume")

	assert.Equal(t, 61, analysis.Score)
}

func TestScoreNeverReturnsError(t *testing.T) {
	t.Run("quota failure degrades to zero with quota message", func(t *testing.T) {
		scorer := NewScorer(&stubGenerator{err: errors.New("rpc error: code 429 RESOURCE_EXHAUSTED")}, nil)

		analysis := scorer.Score(context.Background(), "job", "resume")

		assert.Equal(t, 0, analysis.Score)
		assert.Contains(t, analysis.Reasoning, "Quota Exceeded")
	})

	t.Run("auth failure carries the auth message", func(t *testing.T) {
		scorer := NewScorer(&stubGenerator{err: errors.New("401 UNAUTHENTICATED: bad API key")}, nil)

		analysis := scorer.Score(context.Background(), "job", "resume")

		assert.Equal(t, 0, analysis.Score)
		assert.Contains(t, analysis.Reasoning, "API")
	})

	t.Run("unparseable payload degrades instead of failing", func(t *testing.T) {
		scorer := NewScorer(&stubGenerator{response: "not json at all"}, nil)

		analysis := scorer.Score(context.Background(), "job", "resume")

		assert.Equal(t, 0, analysis.Score)
		assert.True(t, strings.HasPrefix(analysis.Reasoning, "⚠️"))
	})
}

func TestAnalyzeDual(t *testing.T) {
	scorer := NewScorer(&stubGenerator{
		response: `{"score": 72, "reasoning": "טוב", "pros": ["ניסיון"], "cons": ["שפה"]}`,
	}, nil)

	analysis := scorer.AnalyzeDual(context.Background(), "job", "resume")

	assert.Equal(t, 72, analysis.Score)
	assert.Equal(t, []string{"ניסיון"}, analysis.Pros)
	assert.Equal(t, []string{"שפה"}, analysis.Cons)
}

func TestExtractJSON(t *testing.T) {
	t.Run("prose around an object", func(t *testing.T) {
		got := extractJSON(`Here is the result: {"a": 1} hope it helps`)
		assert.Equal(t, `{"a": 1}`, got)
	})

	t.Run("array before object is taken as array", func(t *testing.T) {
		got := extractJSON(`[{"a": 1}, {"a": 2}]`)
		assert.Equal(t, `[{"a": 1}, {"a": 2}]`, got)
	})

	t.Run("fenced block", func(t *testing.T) {
		got := extractJSON("```json\n{\"a\": 1}\n```")
		assert.Equal(t, `{"a": 1}`, got)
	})
}

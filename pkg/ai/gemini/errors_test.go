package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ErrorUnknown},
		{"http 429", errors.New("server returned 429"), ErrorQuota},
		{"resource exhausted", errors.New("rpc: RESOURCE_EXHAUSTED"), ErrorQuota},
		{"quota text", errors.New("quota exceeded for project"), ErrorQuota},
		{"http 401", errors.New("status 401"), ErrorAuth},
		{"unauthenticated", errors.New("UNAUTHENTICATED request"), ErrorAuth},
		{"bad key", errors.New("invalid API key provided"), ErrorAuth},
		{"credentials", errors.New("could not load credentials"), ErrorAuth},
		{"http 503", errors.New("upstream 503"), ErrorOverloaded},
		{"overloaded", errors.New("model is overloaded"), ErrorOverloaded},
		{"anything else", errors.New("connection reset by peer"), ErrorUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyError(tc.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("quota message mentions the quota", func(t *testing.T) {
		msg := UserMessage(ErrorQuota, errors.New("429"))
		assert.Contains(t, msg, "Quota Exceeded")
	})

	t.Run("unknown wraps the raw error", func(t *testing.T) {
		msg := UserMessage(ErrorUnknown, errors.New("boom"))
		assert.Contains(t, msg, "boom")
	})

	t.Run("unknown without error still renders", func(t *testing.T) {
		msg := UserMessage(ErrorUnknown, nil)
		assert.Contains(t, msg, "Unknown Error")
	})
}

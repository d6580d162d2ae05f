package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"go-talentmatch-backend/internal/domain"

	"google.golang.org/genai"
)

type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Scorer is the match oracle gateway. Score never returns an error:
// every failure mode collapses into a zero-score analysis whose
// reasoning carries the classified failure message, so callers can
// apply the persistence threshold unconditionally.
type Scorer struct {
	generator jsonGenerator
	logger    *slog.Logger
}

func NewScorer(generator jsonGenerator, logger *slog.Logger) *Scorer {
	return &Scorer{generator: generator, logger: logger}
}

var matchSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":     {Type: genai.TypeInteger},
		"reasoning": {Type: genai.TypeString},
	},
	Required: []string{"score", "reasoning"},
}

var dualMatchSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":     {Type: genai.TypeInteger},
		"reasoning": {Type: genai.TypeString},
		"pros":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"cons":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"score", "reasoning"},
}

// Score evaluates the fit between a job description and a candidate
// resume. Output is always well-formed; score 0 doubles as the failure
// value.
func (s *Scorer) Score(ctx context.Context, jobText, resumeText string) domain.MatchAnalysis {
	prompt := fmt.Sprintf(`Act as an expert HR Recruiter.
Analyze the match between the following Job Description and Candidate Resume.
Job Description: %q
Candidate Resume Summary: %q
Return a JSON object with:
1. "score": A number between 0-100 indicating the fit.
2. "reasoning": A concise 1-sentence summary in Hebrew.`, jobText, resumeText)

	raw, err := s.generator.GenerateJSON(ctx, prompt, matchSchema)
	if err != nil {
		return s.degrade(err)
	}

	var analysis domain.MatchAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		return s.degrade(fmt.Errorf("parse oracle response: %w", err))
	}

	analysis.Score = clampScore(analysis.Score)
	return analysis
}

// AnalyzeDual evaluates separately provided job text and resume text
// and additionally returns pros/cons lists. Same degradation contract
// as Score.
func (s *Scorer) AnalyzeDual(ctx context.Context, jobText, resumeText string) domain.DualMatchAnalysis {
	prompt := fmt.Sprintf(`Act as a senior HR AI.
Analyze the compatibility between the Job Description and the Candidate Resume provided below.

1. ANALYZE the Job Requirements.
2. ANALYZE the Candidate's skills and experience.
3. COMPARE them.
4. OUTPUT a JSON with score (0-100), reasoning (Hebrew), pros (Array of strings, Hebrew), and cons (Array of strings, Hebrew).

--- JOB DESCRIPTION SOURCE ---
%s

--- CANDIDATE RESUME SOURCE ---
%s`, jobText, resumeText)

	raw, err := s.generator.GenerateJSON(ctx, prompt, dualMatchSchema)
	if err != nil {
		return domain.DualMatchAnalysis{MatchAnalysis: s.degrade(err)}
	}

	var analysis domain.DualMatchAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		return domain.DualMatchAnalysis{MatchAnalysis: s.degrade(fmt.Errorf("parse oracle response: %w", err))}
	}

	analysis.Score = clampScore(analysis.Score)
	return analysis
}

// AnalyzeRaw evaluates a single blob that mixes the job description and
// the candidate profile, letting the model separate them.
func (s *Scorer) AnalyzeRaw(ctx context.Context, rawInput string) domain.DualMatchAnalysis {
	prompt := fmt.Sprintf(`Act as a senior HR AI.
The user has provided a text that contains BOTH a Job Description and a Candidate's Resume details.
1. DISTINGUISH between the job requirements and the candidate's profile.
2. ANALYZE the compatibility.
3. OUTPUT a JSON with score (0-100), reasoning (Hebrew), and short lists of "pros" and "cons" (Hebrew).
Input Text: %q`, rawInput)

	raw, err := s.generator.GenerateJSON(ctx, prompt, dualMatchSchema)
	if err != nil {
		return domain.DualMatchAnalysis{MatchAnalysis: s.degrade(err)}
	}

	var analysis domain.DualMatchAnalysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		return domain.DualMatchAnalysis{MatchAnalysis: s.degrade(fmt.Errorf("parse oracle response: %w", err))}
	}

	analysis.Score = clampScore(analysis.Score)
	return analysis
}

func (s *Scorer) degrade(err error) domain.MatchAnalysis {
	kind := ClassifyError(err)
	if s.logger != nil {
		s.logger.Error("match analysis failed", "kind", kind.String(), "error", err)
	}
	return domain.MatchAnalysis{Score: 0, Reasoning: UserMessage(kind, err)}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// extractJSON strips markdown fences and surrounding prose so that the
// payload between the outermost braces or brackets survives.
func extractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
		if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
			cleaned = cleaned[:idx]
		}
	}
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimSpace(cleaned)

	arrayStart := strings.Index(cleaned, "[")
	arrayEnd := strings.LastIndex(cleaned, "]")
	objectStart := strings.Index(cleaned, "{")
	objectEnd := strings.LastIndex(cleaned, "}")

	isArrayFirst := arrayStart != -1 && (objectStart == -1 || arrayStart < objectStart)

	if isArrayFirst && arrayEnd > arrayStart {
		return cleaned[arrayStart : arrayEnd+1]
	}
	if objectStart != -1 && objectEnd > objectStart {
		return cleaned[objectStart : objectEnd+1]
	}
	return cleaned
}

package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-talentmatch-backend/internal/domain"
)

func TestGenerateResumeProfile(t *testing.T) {
	toolbox := NewToolbox(&stubGenerator{response: `{
		"full_name": "Dana Levi",
		"current_title": "Backend Developer",
		"skills": ["Go", "Postgres"],
		"full_resume_text": "Experienced backend developer."
	}`})

	profile, err := toolbox.GenerateResumeProfile(context.Background(), "raw cv text")

	assert.NoError(t, err)
	assert.Equal(t, "Dana Levi", profile.FullName)
	assert.Equal(t, []string{"Go", "Postgres"}, profile.Skills)
}

func TestToolErrorCarriesUserMessage(t *testing.T) {
	toolbox := NewToolbox(&stubGenerator{err: errors.New("429 RESOURCE_EXHAUSTED")})

	_, err := toolbox.GenerateJobAd(context.Background(), "brief")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Quota Exceeded")
}

func TestGenerateQuestionnaireList(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		toolbox := NewToolbox(&stubGenerator{response: `[{"title": "Go", "type": "PROFESSIONAL", "questions": []}]`})

		list, err := toolbox.GenerateQuestionnaireSet(context.Background(), "Backend", "Dana")

		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, domain.QuestionnaireProfessional, list[0].Type)
	})

	t.Run("object-wrapped array", func(t *testing.T) {
		toolbox := NewToolbox(&stubGenerator{response: `{"questionnaires": [{"title": "Fit", "type": "GENERAL", "questions": []}]}`})

		list, err := toolbox.GenerateQuestionnaireSet(context.Background(), "Backend", "Dana")

		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, "Fit", list[0].Title)
	})
}

func TestAnalyzeInterviewAnswersClampsScore(t *testing.T) {
	toolbox := NewToolbox(&stubGenerator{response: `{"final_score": 250, "summary": "x", "recommendation": "Hold"}`})

	eval, err := toolbox.AnalyzeInterviewAnswers(context.Background(), "job", []domain.Questionnaire{
		{Title: "Go", Questions: []domain.Question{{Text: "q1", Answer: ""}}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 100, eval.FinalScore)
}

func TestTruncateIsRuneSafe(t *testing.T) {
	s := "שלום עולם"
	assert.Equal(t, "שלום", truncate(s, 4))
	assert.Equal(t, s, truncate(s, 100))
}

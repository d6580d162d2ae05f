package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"go-talentmatch-backend/internal/domain"

	"google.golang.org/genai"
)

// Toolbox bundles the generative helpers behind the AI tools surface:
// resume profile extraction, job-ad copywriting, questionnaire
// generation and interview-answer analysis. Unlike the Scorer these
// return errors, since they back explicitly user-triggered actions.
type Toolbox struct {
	generator jsonGenerator
}

func NewToolbox(generator jsonGenerator) *Toolbox {
	return &Toolbox{generator: generator}
}

var resumeProfileSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"full_name":          {Type: genai.TypeString},
		"current_title":      {Type: genai.TypeString},
		"department":         {Type: genai.TypeString},
		"field":              {Type: genai.TypeString},
		"contact_email":      {Type: genai.TypeString},
		"contact_phone":      {Type: genai.TypeString},
		"experience_summary": {Type: genai.TypeString},
		"skills":             {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"full_resume_text":   {Type: genai.TypeString},
		"theme_color":        {Type: genai.TypeString},
	},
}

var jobAdSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":        {Type: genai.TypeString},
		"department":   {Type: genai.TypeString},
		"location":     {Type: genai.TypeString},
		"description":  {Type: genai.TypeString},
		"full_ad_text": {Type: genai.TypeString},
		"requirements": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"theme_color":  {Type: genai.TypeString},
	},
}

var questionnaireSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"type":        {Type: genai.TypeString, Enum: []string{"PROFESSIONAL", "GENERAL"}},
		"description": {Type: genai.TypeString},
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"text": {Type: genai.TypeString},
					"type": {Type: genai.TypeString, Enum: []string{"text", "boolean", "rating"}},
				},
			},
		},
	},
}

var questionnaireSetSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: questionnaireSchema,
}

var interviewEvaluationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"final_score":    {Type: genai.TypeInteger},
		"summary":        {Type: genai.TypeString},
		"strengths":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"concerns":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"recommendation": {Type: genai.TypeString},
	},
}

// GenerateResumeProfile extracts a structured candidate profile from
// free text.
func (t *Toolbox) GenerateResumeProfile(ctx context.Context, textInput string) (*domain.ResumeProfile, error) {
	prompt := fmt.Sprintf(`Create a professional candidate profile summary based on this text: %q. If the text is raw, format it beautifully into the schema.`, textInput)

	raw, err := t.generator.GenerateJSON(ctx, prompt, resumeProfileSchema)
	if err != nil {
		return nil, toolError(err)
	}

	var profile domain.ResumeProfile
	if err := json.Unmarshal([]byte(extractJSON(raw)), &profile); err != nil {
		return nil, fmt.Errorf("parse resume profile: %w", err)
	}
	return &profile, nil
}

// RefineResumeProfile rewrites an existing profile according to the
// given instruction.
func (t *Toolbox) RefineResumeProfile(ctx context.Context, current *domain.ResumeProfile, instruction string) (*domain.ResumeProfile, error) {
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("marshal current profile: %w", err)
	}

	prompt := fmt.Sprintf(`Update this candidate profile based on the instruction: %q.
Current Profile: %s`, instruction, currentJSON)

	raw, err := t.generator.GenerateJSON(ctx, prompt, resumeProfileSchema)
	if err != nil {
		return nil, toolError(err)
	}

	var profile domain.ResumeProfile
	if err := json.Unmarshal([]byte(extractJSON(raw)), &profile); err != nil {
		return nil, fmt.Errorf("parse refined profile: %w", err)
	}
	return &profile, nil
}

// GenerateJobAd writes a job advertisement from a short brief.
func (t *Toolbox) GenerateJobAd(ctx context.Context, textInput string) (*domain.JobAdDraft, error) {
	prompt := fmt.Sprintf(`Create a professional Job Advertisement based on: %q. Ensure attractive Hebrew copy.`, textInput)

	raw, err := t.generator.GenerateJSON(ctx, prompt, jobAdSchema)
	if err != nil {
		return nil, toolError(err)
	}

	var draft domain.JobAdDraft
	if err := json.Unmarshal([]byte(extractJSON(raw)), &draft); err != nil {
		return nil, fmt.Errorf("parse job ad: %w", err)
	}
	return &draft, nil
}

// RefineJobAd updates an existing advertisement per the instruction.
func (t *Toolbox) RefineJobAd(ctx context.Context, current *domain.JobAdDraft, instruction string) (*domain.JobAdDraft, error) {
	currentJSON, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("marshal current ad: %w", err)
	}

	prompt := fmt.Sprintf(`Update this Job Advertisement based on the instruction: %q.
Current Ad: %s`, instruction, currentJSON)

	raw, err := t.generator.GenerateJSON(ctx, prompt, jobAdSchema)
	if err != nil {
		return nil, toolError(err)
	}

	var draft domain.JobAdDraft
	if err := json.Unmarshal([]byte(extractJSON(raw)), &draft); err != nil {
		return nil, fmt.Errorf("parse refined ad: %w", err)
	}
	return &draft, nil
}

// GenerateTailoredQuestionnaires builds five screening questionnaires
// aimed at the gaps between a job description and a resume: three
// professional, two general, five questions each.
func (t *Toolbox) GenerateTailoredQuestionnaires(ctx context.Context, jobDescription, candidateResume string) ([]domain.Questionnaire, error) {
	prompt := fmt.Sprintf(`Act as a senior Recruiter.
Analyze the following Job Description against the Candidate's Resume.
Identify 3 key "Technical Gaps" or areas that need verification.
Identify 2 key "Soft Skill/Cultural" areas to probe.

Based on this, generate exactly 5 screening questionnaires in Hebrew.

Structure Required:
1. Three (3) Professional/Technical Questionnaires: Focus specifically on the identified technical gaps or experience mismatch.
2. Two (2) Personality/Cultural Questionnaires: Focus on motivation, team fit, and soft skills.

Each questionnaire MUST have exactly 5 questions.
The output must be a JSON Array of objects.

Job Description: %s
Candidate Resume: %s`, truncate(jobDescription, 1000), truncate(candidateResume, 1000))

	return t.generateQuestionnaireList(ctx, prompt)
}

// GenerateQuestionnaireSet builds the default five-questionnaire set
// for a role without gap analysis.
func (t *Toolbox) GenerateQuestionnaireSet(ctx context.Context, jobTitle, candidateName string) ([]domain.Questionnaire, error) {
	prompt := fmt.Sprintf(`Create a set of 5 screening questionnaires for the role of %q.
Candidate Name: %s.

Structure:
- 3 Professional/Technical Questionnaires (5 questions each).
- 2 Personality/Soft Skills Questionnaires (5 questions each).

Output JSON format exactly as specified (Array of objects).`, jobTitle, candidateName)

	return t.generateQuestionnaireList(ctx, prompt)
}

// GenerateSingleQuestionnaire builds one ad-hoc questionnaire about a
// topic.
func (t *Toolbox) GenerateSingleQuestionnaire(ctx context.Context, topic, jobTitle string) (*domain.Questionnaire, error) {
	prompt := fmt.Sprintf(`Create a single screening questionnaire in Hebrew about %q for the role of %q.
It should contain exactly 5 questions.
Return strictly JSON object.`, topic, jobTitle)

	raw, err := t.generator.GenerateJSON(ctx, prompt, questionnaireSchema)
	if err != nil {
		return nil, toolError(err)
	}

	var q domain.Questionnaire
	if err := json.Unmarshal([]byte(extractJSON(raw)), &q); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}
	return &q, nil
}

// AnalyzeInterviewAnswers grades a candidate's completed questionnaire
// answers against the job description.
func (t *Toolbox) AnalyzeInterviewAnswers(ctx context.Context, jobDescription string, questionnaires []domain.Questionnaire) (*domain.InterviewEvaluation, error) {
	type qaPair struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	type qaTopic struct {
		Topic string   `json:"topic"`
		Type  string   `json:"type"`
		QA    []qaPair `json:"qa"`
	}

	topics := make([]qaTopic, 0, len(questionnaires))
	for _, q := range questionnaires {
		topic := qaTopic{Topic: q.Title, Type: string(q.Type)}
		for _, qs := range q.Questions {
			answer := qs.Answer
			if answer == "" {
				answer = "No answer provided"
			}
			topic.QA = append(topic.QA, qaPair{Question: qs.Text, Answer: answer})
		}
		topics = append(topics, topic)
	}

	qaJSON, err := json.Marshal(topics)
	if err != nil {
		return nil, fmt.Errorf("marshal q&a data: %w", err)
	}

	prompt := fmt.Sprintf(`Act as a senior HR Analyst.
Analyze the candidate's answers to the screening questionnaires against the Job Description.

Job Description: %q

Candidate Q&A Data: %s

Output a JSON evaluation containing:
1. final_score: Number (0-100) representing the NEW weighted fit score based on these answers.
2. summary: A professional Hebrew summary of the candidate's performance in this "interview".
3. strengths: Array of strings (Hebrew) listing key strengths identified in answers.
4. concerns: Array of strings (Hebrew) listing red flags or weak answers.
5. recommendation: String (Hebrew) - "Proceed to Interview", "Hold", or "Reject".`, truncate(jobDescription, 1000), qaJSON)

	raw, err := t.generator.GenerateJSON(ctx, prompt, interviewEvaluationSchema)
	if err != nil {
		return nil, toolError(err)
	}

	var eval domain.InterviewEvaluation
	if err := json.Unmarshal([]byte(extractJSON(raw)), &eval); err != nil {
		return nil, fmt.Errorf("parse interview evaluation: %w", err)
	}
	eval.FinalScore = clampScore(eval.FinalScore)
	return &eval, nil
}

func (t *Toolbox) generateQuestionnaireList(ctx context.Context, prompt string) ([]domain.Questionnaire, error) {
	raw, err := t.generator.GenerateJSON(ctx, prompt, questionnaireSetSchema)
	if err != nil {
		return nil, toolError(err)
	}

	cleaned := extractJSON(raw)

	var list []domain.Questionnaire
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return list, nil
	}

	// The model occasionally wraps the array in an object; take the
	// first array-valued property.
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &wrapper); err != nil {
		return nil, fmt.Errorf("parse questionnaire set: %w", err)
	}
	for _, v := range wrapper {
		if err := json.Unmarshal(v, &list); err == nil {
			return list, nil
		}
	}
	return nil, fmt.Errorf("questionnaire set response contained no array")
}

func toolError(err error) error {
	kind := ClassifyError(err)
	return fmt.Errorf("%s: %w", UserMessage(kind, err), err)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

package domain

type QuestionnaireType string

const (
	QuestionnaireProfessional QuestionnaireType = "PROFESSIONAL"
	QuestionnaireGeneral      QuestionnaireType = "GENERAL"
)

type Question struct {
	Text   string `json:"text"`
	Type   string `json:"type"` // text | boolean | rating
	Answer string `json:"answer,omitempty"`
}

type Questionnaire struct {
	Title       string            `json:"title"`
	Type        QuestionnaireType `json:"type"`
	Description string            `json:"description"`
	Questions   []Question        `json:"questions"`
}

// InterviewEvaluation is the oracle's verdict over a candidate's
// completed questionnaire answers.
type InterviewEvaluation struct {
	FinalScore     int      `json:"final_score"`
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths"`
	Concerns       []string `json:"concerns"`
	Recommendation string   `json:"recommendation"`
}

// ResumeProfile is the structured extraction of a raw CV text.
type ResumeProfile struct {
	FullName          string   `json:"full_name"`
	CurrentTitle      string   `json:"current_title"`
	Department        string   `json:"department"`
	Field             string   `json:"field"`
	ContactEmail      string   `json:"contact_email"`
	ContactPhone      string   `json:"contact_phone"`
	ExperienceSummary string   `json:"experience_summary"`
	Skills            []string `json:"skills"`
	FullResumeText    string   `json:"full_resume_text"`
	ThemeColor        string   `json:"theme_color"`
}

// JobAdDraft is a generated or OCR-extracted job advertisement.
type JobAdDraft struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	FullAdText   string   `json:"full_ad_text"`
	Requirements []string `json:"requirements"`
	ThemeColor   string   `json:"theme_color"`
}

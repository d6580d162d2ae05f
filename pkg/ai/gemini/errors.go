package gemini

import "strings"

// ErrorKind is the typed classification of an oracle failure. The raw
// transport errors carry no structured code, so ClassifyError is the
// single place where their text is pattern-matched.
type ErrorKind int

const (
	ErrorUnknown ErrorKind = iota
	ErrorQuota
	ErrorAuth
	ErrorOverloaded
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorQuota:
		return "quota"
	case ErrorAuth:
		return "auth"
	case ErrorOverloaded:
		return "overloaded"
	default:
		return "unknown"
	}
}

// ClassifyError maps a raw oracle error onto an ErrorKind by best-effort
// substring matching of the error text.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorUnknown
	}
	msg := err.Error()

	if strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") || strings.Contains(msg, "quota") {
		return ErrorQuota
	}
	if strings.Contains(msg, "401") || strings.Contains(msg, "UNAUTHENTICATED") || strings.Contains(msg, "API key") || strings.Contains(msg, "cred") {
		return ErrorAuth
	}
	if strings.Contains(msg, "503") || strings.Contains(msg, "overloaded") {
		return ErrorOverloaded
	}
	return ErrorUnknown
}

// UserMessage renders the recruiter-facing Hebrew message for a failed
// oracle call.
func UserMessage(kind ErrorKind, err error) string {
	switch kind {
	case ErrorQuota:
		return "⚠️ שגיאת מערכת: הגעת למכסת השימוש (Quota Exceeded). המערכת עמוסה, אנא נסה שוב בעוד דקה."
	case ErrorAuth:
		return "⚠️ שגיאת הרשאה: מפתח ה-API אינו תקין או שאינו מוגדר. בדוק את קובץ ה-Env."
	case ErrorOverloaded:
		return "⚠️ שגיאת מערכת: השרת עמוס כרגע. אנא נסה שוב מאוחר יותר."
	default:
		if err == nil {
			return "⚠️ שגיאה: Unknown Error"
		}
		return "⚠️ שגיאה: " + err.Error()
	}
}

package task

// Stable rejection codes. Shape and format violations share CodeValidation;
// the due-date business rule carries its own code so callers can tell "fix
// your input" apart from "this was valid a moment ago, resubmit".
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidDueDate = "INVALID_DUE_DATE"
)

// FieldError describes a single violated rule, attributable to one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ValidationError is a rejected creation attempt. Field, Message and Code
// come from the first violated rule in check order; Fields carries every
// violation found so transports can surface the full list.
type ValidationError struct {
	Field   string       `json:"field"`
	Message string       `json:"message"`
	Code    string       `json:"code"`
	Fields  []FieldError `json:"errors,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

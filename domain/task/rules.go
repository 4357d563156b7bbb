package task

import (
	"strings"
	"unicode/utf8"
)

// Rejection messages, one per rule. The client renders whatever the server
// returns, so both enforcement sites share these exact strings.
const (
	msgTitleTooShort   = "O título deve ter pelo menos 3 caracteres"
	msgTitleTooLong    = "O título não pode exceder 100 caracteres"
	msgTitleWhitespace = "O título não pode conter apenas espaços em branco"
	msgDescTooLong     = "A descrição não pode exceder 500 caracteres"
	msgDueDateFormat   = "Formato de data inválido. Use AAAA-MM-DD"
	msgDueDatePast     = "A data de vencimento não pode ser anterior à data atual"
	msgPriority        = "Selecione uma prioridade válida: alta, média ou baixa"
)

// CreateInput carries the raw candidate fields exactly as submitted. Nil
// pointers mean the field was absent.
type CreateInput struct {
	Title       string
	Description *string
	DueDate     *string
	Priority    string
}

// CreateParams is the normalized form of an accepted CreateInput: trimmed
// title, nil-normalized description, parsed due date, validated priority.
type CreateParams struct {
	Title       string
	Description *string
	DueDate     *Date
	Priority    Priority
}

// A checkFunc inspects the raw input, writes its normalized field into out,
// and reports a violation or nil.
type checkFunc func(in *CreateInput, out *CreateParams) *FieldError

// createRules is the single ordered rule list enforced on both the
// submitting client and the authoritative server. There is exactly one copy
// of these semantics in the repository: the client package and the task
// module both call ValidateCreate, so the two enforcement sites cannot
// drift. Order matters: the first violated rule determines the reported
// field, message and code.
var createRules = []checkFunc{
	checkTitle,
	checkDescription,
	checkDueDateFormat,
	checkDueDateNotPast,
	checkPriority,
}

// ValidateCreate runs the shared rule list over raw input. On accept it
// returns the normalized parameters; on reject it returns a ValidationError
// built from the first violation, with every violation listed in Fields.
// The due-date rule is evaluated against the current calendar day at call
// time, which is why the server must re-run it regardless of what the
// client already checked.
func ValidateCreate(in CreateInput) (*CreateParams, *ValidationError) {
	out := &CreateParams{}
	var violations []FieldError
	for _, check := range createRules {
		if fe := check(&in, out); fe != nil {
			violations = append(violations, *fe)
		}
	}
	if len(violations) > 0 {
		first := violations[0]
		return nil, &ValidationError{
			Field:   first.Field,
			Message: first.Message,
			Code:    first.Code,
			Fields:  violations,
		}
	}
	return out, nil
}

func checkTitle(in *CreateInput, out *CreateParams) *FieldError {
	trimmed := strings.TrimSpace(in.Title)
	switch {
	case in.Title != "" && trimmed == "":
		return &FieldError{Field: "titulo", Message: msgTitleWhitespace, Code: CodeValidation}
	case utf8.RuneCountInString(trimmed) < 3:
		return &FieldError{Field: "titulo", Message: msgTitleTooShort, Code: CodeValidation}
	case utf8.RuneCountInString(in.Title) > 100:
		return &FieldError{Field: "titulo", Message: msgTitleTooLong, Code: CodeValidation}
	}
	out.Title = trimmed
	return nil
}

func checkDescription(in *CreateInput, out *CreateParams) *FieldError {
	if in.Description == nil {
		return nil
	}
	if utf8.RuneCountInString(*in.Description) > 500 {
		return &FieldError{Field: "descricao", Message: msgDescTooLong, Code: CodeValidation}
	}
	// A blank description is normalized to absent, not rejected. This is
	// asymmetric with the title rule on purpose.
	if strings.TrimSpace(*in.Description) == "" {
		return nil
	}
	desc := *in.Description
	out.Description = &desc
	return nil
}

func checkDueDateFormat(in *CreateInput, out *CreateParams) *FieldError {
	if in.DueDate == nil {
		return nil
	}
	parsed, err := ParseDate(*in.DueDate)
	if err != nil {
		return &FieldError{Field: "data_vencimento", Message: msgDueDateFormat, Code: CodeValidation}
	}
	out.DueDate = &parsed
	return nil
}

func checkDueDateNotPast(_ *CreateInput, out *CreateParams) *FieldError {
	// Vacuously satisfied when the date is absent or failed to parse.
	if out.DueDate == nil {
		return nil
	}
	if out.DueDate.Before(Today()) {
		return &FieldError{Field: "data_vencimento", Message: msgDueDatePast, Code: CodeInvalidDueDate}
	}
	return nil
}

func checkPriority(in *CreateInput, out *CreateParams) *FieldError {
	p := Priority(in.Priority)
	if !p.Valid() {
		return &FieldError{Field: "prioridade", Message: msgPriority, Code: CodeValidation}
	}
	out.Priority = p
	return nil
}

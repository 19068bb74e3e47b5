package validation

// Error kinds
const (
	KindFieldFormat    = "field_format"
	KindTypeConversion = "type_conversion"
	KindRelationship   = "relationship"
	KindPolicy         = "policy"
	KindSystem         = "system"
)

// Error codes
const (
	CodeRequired          = "required"
	CodeTooShort          = "too_short"
	CodeTooLong           = "too_long"
	CodeInvalidCharacters = "invalid_characters"
	CodeNotANumber        = "not_a_number"
	CodeBelowMinimum      = "below_minimum"
	CodeAboveMaximum      = "above_maximum"
	CodeInvalidDate       = "invalid_date"
	CodeDateOrdering      = "date_ordering"
	CodeDurationExceeded  = "duration_exceeded"
	CodeProhibitedContent = "prohibited_content"
	CodeInternal          = "internal"
)

// Wire-level field names, matching the request DTO json tags.
const (
	FieldName      = "name"
	FieldBudget    = "budget"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"

	// FieldGeneral marks errors not attributable to a single input field.
	FieldGeneral = "general"
)

// Error is a single field-level validation failure. Errors are collected
// into lists per stage and returned to the caller; they are never persisted.
type Error struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"-"`
}

func (e Error) Error() string {
	return e.Field + ": " + e.Message
}

func fieldFormat(field, code, message string) Error {
	return Error{Field: field, Code: code, Message: message, Kind: KindFieldFormat}
}

func typeConversion(field, code, message string) Error {
	return Error{Field: field, Code: code, Message: message, Kind: KindTypeConversion}
}

func relationship(field, code, message string) Error {
	return Error{Field: field, Code: code, Message: message, Kind: KindRelationship}
}

func policyError(field, message string) Error {
	return Error{Field: field, Code: CodeProhibitedContent, Message: message, Kind: KindPolicy}
}

// SystemError is returned when something unrelated to the input fails, e.g.
// storage. The cause is logged server-side and never echoed to the caller.
func SystemError() Error {
	return Error{
		Field:   FieldGeneral,
		Code:    CodeInternal,
		Message: "Something went wrong, please try again later",
		Kind:    KindSystem,
	}
}

package errors

import "fmt"

// Error codes
const (
	CodeBotError   = "BOT_ERROR"
	CodeAPIError   = "API_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeDataset    = "DATASET_ERROR"
	CodeCodec      = "CODEC_ERROR"
)

type BotError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *BotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BotError) Unwrap() error {
	return e.Cause
}

func NewBotError(message, code string, statusCode int, context map[string]any) *BotError {
	return &BotError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *BotError) WithCause(cause error) *BotError {
	e.Cause = cause
	return e
}

type APIError struct {
	*BotError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

// ValidationError reports a command argument that failed validation. The
// dispatch layer maps it to the generic ephemeral error response.
type ValidationError struct {
	*BotError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// DatasetError reports a static dataset that could not be loaded or parsed.
type DatasetError struct {
	*BotError
	Path string
}

func NewDatasetError(message, path string, cause error) *DatasetError {
	return &DatasetError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeDataset,
			StatusCode: 500,
			Context:    map[string]any{"path": path},
			Cause:      cause,
		},
		Path: path,
	}
}

// CodecError reports a component token that could not be decoded. Tokens are
// issued by this process, so seeing one means a programming error upstream,
// not bad user input.
type CodecError struct {
	*BotError
	Token string
}

func NewCodecError(message, token string, cause error) *CodecError {
	return &CodecError{
		BotError: &BotError{
			Message:    message,
			Code:       CodeCodec,
			StatusCode: 500,
			Context:    map[string]any{"token": token},
			Cause:      cause,
		},
		Token: token,
	}
}

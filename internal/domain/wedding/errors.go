package wedding

import "errors"

var (
	ErrWeddingNotFound      = errors.New("wedding not found")
	ErrCodeNotFound         = errors.New("rsvp code not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrQuestionNotEditable  = errors.New("question not editable")
	ErrCodeGenerationFailed = errors.New("rsvp code generation failed")
	ErrLabelRequired        = errors.New("question label is required")
	ErrInvalidQuestionType  = errors.New("invalid question type")
	ErrOptionsRequired      = errors.New("options are required for this question type")
	ErrInvalidDate          = errors.New("invalid wedding date")
	ErrUnknownTheme         = errors.New("unknown theme")
)

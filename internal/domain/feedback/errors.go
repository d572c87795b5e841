package feedback

import "errors"

var (
	ErrTemplateNotFound = errors.New("brand template not found")
	ErrFormNotFound     = errors.New("feedback form not found")
	ErrFeedbackNotFound = errors.New("feedback not found")
)

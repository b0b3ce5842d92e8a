package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrIncidentNotFound      = errors.New("incident not found")
	ErrTransitionNotAllowed  = errors.New("status transition not allowed")
	ErrOperationNotFound     = errors.New("operation not found")
	ErrOperationNotRetryable = errors.New("operation is not in failed state")
	ErrDuplicateReportID     = errors.New("report id already exists")
)

// ValidationError - обязательное поле отсутствует или слишком короткое.
// Исправляется заявителем, повторная отправка блокируется до исправления.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationErrors собирает все ошибки формы сразу
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// ExternalServiceError - сбой вызова хранилища, объектного хранилища или геокодера.
// Операция прекращается без повторов.
type ExternalServiceError struct {
	Service string
	Op      string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// PartialMediaUploadFailure - часть вложений не загрузилась; заявка принимается с остальными
type PartialMediaUploadFailure struct {
	Failed   []string
	Uploaded int
}

func (e *PartialMediaUploadFailure) Error() string {
	return fmt.Sprintf("%d media file(s) could not be uploaded: %s", len(e.Failed), strings.Join(e.Failed, ", "))
}

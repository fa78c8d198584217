package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidAssessment = errors.New("invalid assessment")
	// ErrFetchAssessments means the record source failed; the dashboard shows an error state
	ErrFetchAssessments = errors.New("failed to fetch assessments")
)

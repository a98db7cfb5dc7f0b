package domain

import "errors"

var (
	// ErrSchemaValidation is returned when a raw record is missing a required
	// field or a field has the wrong shape
	ErrSchemaValidation = errors.New("record failed schema validation")

	// ErrMissingCompetitor is returned when the comparison page is rendered
	// without competitor data
	ErrMissingCompetitor = errors.New("competitor data missing for comparison page")

	// ErrUnknownPageType is returned when the writer is given an unrecognized
	// page-type key
	ErrUnknownPageType = errors.New("unknown page type")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)

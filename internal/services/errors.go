package services

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrTemplateNotFound    = errors.New("itinerary template not found")
	ErrIdeaNotFound        = errors.New("activity idea not found")
	ErrInvalidCount        = errors.New("invalid idea count")
	ErrEmptyDescription    = errors.New("destination name or description is required")
)

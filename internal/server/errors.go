package server

import (
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nutriscan/nutrition-scanner/internal/common"
)

// statusFromError maps application errors onto gRPC codes. Anything
// unrecognized is an internal error with a generic message so DB
// details never leak to clients.
func statusFromError(err error) error {
	var appErr *common.AppError
	msg := "internal error"
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, msg)
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}

// parseID parses a required UUID field.
func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

// parseOptionalID parses a UUID field that may be empty.
func parseOptionalID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := parseID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

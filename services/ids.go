package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"HRMS-Lite/pkg/apperror"
)

// parseID turns a path or body id into an ObjectID. A malformed id can never
// name a stored document, so it is reported as not found.
func parseID(resource, raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, apperror.NotFound(resource, raw)
	}
	return id, nil
}

package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID            = errors.New("invalid identifier")
	ErrValidation           = errors.New("validation failed")
	ErrUserNotFound         = errors.New("user not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrNotParticipant       = errors.New("user is not a participant in this conversation")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email is already in use")
	ErrTokenMissing         = errors.New("invalid request")
	ErrTokenExpired         = errors.New("jwt expired")
	ErrTokenInvalid         = errors.New("invalid token")
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrListingLimit         = errors.New("monthly listing limit reached")
)

func parseUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: user id %q", ErrInvalidID, id)
	}
	return nil
}

func parseConversationID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: conversation id %q", ErrInvalidID, id)
	}
	return oid, nil
}

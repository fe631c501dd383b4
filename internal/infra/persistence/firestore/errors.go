package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound reports whether the store signalled a missing document.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isAlreadyExists reports whether a create collided with an existing document.
func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the requester is not the resource owner
	ErrForbidden = errors.New("you are not the owner of this resource")
	// ErrCacheMiss will throw if the requested key is not in cache
	ErrCacheMiss = errors.New("cache miss")
)

// EntityErrorKind distinguishes the two stages of entity payload verification.
type EntityErrorKind string

const (
	NotContainNeededProperty     EntityErrorKind = "NOT_CONTAIN_NEEDED_PROPERTY"
	NotMeetDataTypeSpecification EntityErrorKind = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// EntityError reports a failed entity construction. Entity is the upper-snake
// entity code, e.g. "NEW_THREAD".
type EntityError struct {
	Entity string
	Kind   EntityErrorKind
}

func (e EntityError) Error() string {
	return e.Entity + "." + string(e.Kind)
}

func errMissingProperty(entity string) error {
	return EntityError{Entity: entity, Kind: NotContainNeededProperty}
}

func errWrongDataType(entity string) error {
	return EntityError{Entity: entity, Kind: NotMeetDataTypeSpecification}
}

package adapter

import "errors"

var (
	ErrInvalidURL     = errors.New("invalid url")
	ErrEmptyResponse  = errors.New("empty response body")
	ErrNotAnImage     = errors.New("response is not an image")
	ErrResponseTooBig = errors.New("response exceeds size limit")

	ErrNotFound            = errors.New("resource not found")
	ErrForbidden           = errors.New("forbidden")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

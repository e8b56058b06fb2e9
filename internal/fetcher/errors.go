package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had non 2xx status.
	ErrStatusNotOK = errors.New("response status is not 2xx")
	// ErrUndecodableBody is returned when response body can't be decoded from its charset.
	ErrUndecodableBody = errors.New("response body can't be decoded")
)

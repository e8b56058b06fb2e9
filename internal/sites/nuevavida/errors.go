package nuevavida

import "errors"

var (
	// ErrPageUnavailable is returned when page can't be fetched.
	ErrPageUnavailable = errors.New("page unavailable")
	// ErrMissingDetailURL is returned for cards without link to animal detail page.
	ErrMissingDetailURL = errors.New("card has no detail url")
	// ErrCorruptCard is returned when card markup breaks extraction.
	ErrCorruptCard = errors.New("corrupt card")
)

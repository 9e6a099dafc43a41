package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch failed.
type Kind int

const (
	// Other covers network and transport failures and unexpected statuses.
	Other Kind = iota
	// ParseFailure means the page was retrieved but held no extractable article.
	ParseFailure
	// NotFound means the remote resource is absent.
	NotFound
)

func (k Kind) String() string {
	switch k {
	case ParseFailure:
		return "parse failure"
	case NotFound:
		return "not found"
	default:
		return "other"
	}
}

var (
	// ErrParseFailure matches any FetchError of kind ParseFailure.
	ErrParseFailure = errors.New("article could not be parsed")
	// ErrNotFound matches any FetchError of kind NotFound.
	ErrNotFound = errors.New("article not found")
	// ErrBodyTooLarge is wrapped when a page exceeds the body size cap.
	ErrBodyTooLarge = errors.New("response body too large")
)

// FetchError is returned by Fetcher.Fetch.
type FetchError struct {
	Kind       Kind
	URL        string
	StatusCode int // Zero unless the server answered.
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrNotFound and ErrParseFailure by kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrParseFailure:
		return e.Kind == ParseFailure
	}
	return false
}

// KindOf returns the Kind of err, or Other if err is not a FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Other
}

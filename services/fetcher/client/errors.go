package client

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidJSON signals that the response body could not be parsed as JSON
var ErrInvalidJSON = errors.New("response body is not valid JSON")

// ErrInvalidUTF8 signals that the response body is not UTF-8 encoded text
var ErrInvalidUTF8 = errors.New("response body is not valid UTF-8")

// ErrStatusNotOK is returned when SonarCloud answers with a non-2xx status code
type ErrStatusNotOK int

func (e ErrStatusNotOK) Error() string {
	return "non-2xx HTTP status code: " + strconv.Itoa(int(e)) + " " + http.StatusText(int(e))
}

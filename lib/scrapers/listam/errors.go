package listam

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// UnexpectedStatusError is returned when the site answers any fetch with
// a status code outside the accepted set. It is the only error kind the
// extraction engine itself produces: markup that fails to match a
// selector degrades to zero values instead of failing.
type UnexpectedStatusError struct {
	Accepted []int
	Received int
	Context  string
}

func (e *UnexpectedStatusError) Error() string {
	accepted := make([]string, len(e.Accepted))
	for i, code := range e.Accepted {
		accepted[i] = strconv.Itoa(code)
	}
	return fmt.Sprintf(
		"unexpected status code %d (accepted: %s) while %s",
		e.Received, strings.Join(accepted, ", "), e.Context,
	)
}

func checkStatus(status int, context string) error {
	if status == http.StatusOK {
		return nil
	}
	return &UnexpectedStatusError{
		Accepted: []int{http.StatusOK},
		Received: status,
		Context:  context,
	}
}

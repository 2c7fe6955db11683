package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code string
}

func (e *codedError) Error() string { return e.code }

var errSubmissionNotFound = New("submission not found")

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrapf(errSubmissionNotFound, "find submission %s", "s1")

	assert.True(t, Is(err, errSubmissionNotFound))
	assert.Equal(t, "find submission s1: submission not found", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsSentinel")
}

func TestAs(t *testing.T) {
	wrapped := Wrap(&codedError{code: "CONFLICT"}, "deciding submission")

	var target *codedError
	assert.True(t, As(wrapped, &target))
	assert.Equal(t, "CONFLICT", target.code)

	assert.False(t, As(New("plain"), &target))
}

func TestNilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

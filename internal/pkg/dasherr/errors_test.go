package dasherr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message, "expected the original error to be left untouched")
	assert.Equal(t, "changed", changedE.Message)
}

func TestInvalidViolationsDoesNotLeak(t *testing.T) {
	e := NewInvalidViolations([]string{"start"})
	assert.NotNil(t, e.Extras)
	assert.Nil(t, ErrInvalidReq.Extras, "expected the shared sentinel to stay without extras")
	assert.Equal(t, "INVALID_REQUEST: invalid request: some or all request parameters are invalid", e.Error())
}

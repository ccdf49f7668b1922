package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterValueError(t *testing.T) {
	err := NewClusterValueError(1, 42)

	assert.Contains(t, err.Error(), "cluster 1")
	assert.Contains(t, err.Error(), "int")
	assert.True(t, stderrors.Is(err, ErrInvalidInput))
	assert.True(t, IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("before", nil, "cannot be nil")

	assert.Equal(t, "validation failed for field before: cannot be nil", err.Error())
	assert.True(t, stderrors.Is(err, ErrInvalidInput))

	noField := NewValidationError("", nil, "bad input")
	assert.Equal(t, "validation failed: bad input", noField.Error())
}

func TestSolverError(t *testing.T) {
	cause := New("simplex: infeasible problem")
	err := NewSolverError(3, 2, cause)

	assert.Contains(t, err.Error(), "3 before")
	assert.Contains(t, err.Error(), "2 after")
	assert.True(t, stderrors.Is(err, ErrSolverFailure))
	assert.True(t, IsSolverFailure(err))
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestSolverErrorAs(t *testing.T) {
	var wrapped error = NewSolverError(1, 1, New("boom"))

	var solverErr *SolverError
	require.True(t, stderrors.As(wrapped, &solverErr))
	assert.Equal(t, 1, solverErr.BeforeClusters)
}

func TestParseError(t *testing.T) {
	cause := New("unexpected token")
	err := &ParseError{Path: "before.json", Format: "json", Err: cause}

	assert.Contains(t, err.Error(), "before.json")
	assert.Equal(t, cause, stderrors.Unwrap(err))

	anon := &ParseError{Format: "yaml", Err: cause}
	assert.NotContains(t, anon.Error(), "  ")
}

func TestWrapIO(t *testing.T) {
	assert.NoError(t, WrapIO("read", "f.json", nil))

	cause := New("permission denied")
	err := WrapIO("read", "f.json", cause)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read f.json")
	assert.True(t, stderrors.Is(err, cause))
}

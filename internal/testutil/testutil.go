// Package testutil provides testing utilities and helpers for zstat tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/zstat/internal/types"
)

// MockSource is a mock implementation of random.Source for testing.
type MockSource struct {
	mock.Mock
}

// Float64 mocks the Float64 method.
func (m *MockSource) Float64() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

// NewMockSource creates a mock source that returns draws in order, one
// call per value.
func NewMockSource(t *testing.T, draws ...float64) *MockSource {
	t.Helper()
	m := new(MockSource)
	for _, d := range draws {
		m.On("Float64").Return(d).Once()
	}
	return m
}

// FixedSource always returns the same draw.
type FixedSource float64

// Float64 returns the fixed value.
func (f FixedSource) Float64() float64 {
	return float64(f)
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		t.Fatalf("Expected success, got error: %v", *result.Error)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatal("Expected error, got success")
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// AssertDataField is a helper to assert a specific data field value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	if result.Data == nil {
		t.Fatal("Result data is nil")
	}

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}
	if actual != expected {
		t.Errorf("Field %s: expected %v, got %v", field, expected, actual)
	}
}

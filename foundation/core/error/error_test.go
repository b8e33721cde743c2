// File: error_test.go
// Title: Structured Error Tests
// Description: Unit tests for the Error type, code lookups and severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-06-14

package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("class 'a' does not exist").WithCode(CodeNotFound).WithOperation("GetClass")

	assert.Equal(t, "class 'a' does not exist", err.Error())
	assert.Equal(t, CodeNotFound, err.Code())
	assert.Equal(t, SeverityLow, err.Severity())
	assert.Equal(t, "GetClass", err.Operation())
	assert.False(t, err.Timestamp().IsZero())
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "ignored"))
	})

	t.Run("standard error", func(t *testing.T) {
		base := errors.New("permission denied")
		err := Wrap(base, "Error")
		assert.Equal(t, "Error: permission denied", err.Error())
		assert.Equal(t, CodeUnknown, err.Code())
		assert.ErrorIs(t, err, base)
	})

	t.Run("preserves code and details", func(t *testing.T) {
		inner := New("bad type").WithCode(CodeGrammar).WithDetail("offset", 3)
		err := Wrap(inner, "Invalid field type")
		assert.Equal(t, CodeGrammar, err.Code())
		assert.Equal(t, 3, err.Details()["offset"])
		assert.Equal(t, inner, err.RootCause())
	})
}

func TestHasCode(t *testing.T) {
	inner := New("missing").WithCode(CodeNotFound)
	outer := fmt.Errorf("context: %w", inner)

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", inner, CodeNotFound, true},
		{"wrapped by fmt", outer, CodeNotFound, true},
		{"other code", inner, CodeIO, false},
		{"plain error", errors.New("x"), CodeNotFound, false},
		{"nil", nil, CodeNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCode(tt.err, tt.code))
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := New("disk full").WithCode(CodeIO)
	require.Equal(t, CodeIO, GetCode(err))
	assert.Equal(t, SeverityHigh, GetSeverity(err))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, SeverityMedium, GetSeverity(errors.New("plain")))
}

func TestExplicitSeveritySurvivesCode(t *testing.T) {
	err := New("snapshot lost").WithSeverity(SeverityCritical).WithCode(CodeNoSnapshot)
	assert.Equal(t, SeverityCritical, err.Severity())
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeGrammar, "grammar"},
		{CodeDispatch, "dispatch"},
		{CodeAlreadyExists, "model"},
		{CodeTimelineBoundary, "timeline"},
		{CodeIO, "io"},
		{CodeConfigError, "configuration"},
		{CodeUnknown, "generic"},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.True(t, tt.code.IsValid())
			assert.Equal(t, tt.want, tt.code.Category())
		})
	}
	assert.False(t, Code("BOGUS").IsValid())
}

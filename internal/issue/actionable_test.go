// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "load configuration", Resource: "config.cue"},
			want: "failed to load configuration: config.cue",
		},
		{
			name: "with resource and cause",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "config.cue",
				Cause:     errors.New("file not found"),
			},
			want: "failed to load configuration: config.cue: file not found",
		},
		{
			name: "cause without resource",
			err:  &ActionableError{Operation: "run benchmark", Cause: errors.New("boom")},
			want: "failed to run benchmark: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := NewErrorContext().WithOperation("test").Wrap(cause).BuildError()

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	middle := fmt.Errorf("middle: %w", inner)
	ae := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Check the syntax").
		WithSuggestion("Run 'langbench config init'").
		Wrap(middle).
		Build()

	brief := ae.Format(false)
	if !strings.Contains(brief, "\n  • Check the syntax") || !strings.Contains(brief, "\n  • Run 'langbench config init'") {
		t.Errorf("Format(false) missing suggestions:\n%s", brief)
	}
	if strings.Contains(brief, "Error chain") {
		t.Errorf("Format(false) must not include the error chain:\n%s", brief)
	}

	full := ae.Format(true)
	if !strings.Contains(full, "Error chain:\n  1. middle: inner\n  2. inner") {
		t.Errorf("Format(true) chain mismatch:\n%s", full)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	ctx := NewErrorContext().WithResource("x").Wrap(errors.New("y"))
	if ctx.Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := ctx.BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want untyped nil", err)
	}
}

func TestActionableError_HasSuggestions(t *testing.T) {
	t.Parallel()

	if (&ActionableError{Operation: "x"}).HasSuggestions() {
		t.Error("expected no suggestions")
	}
	if !NewErrorContext().WithOperation("x").WithSuggestion("y").Build().HasSuggestions() {
		t.Error("expected suggestions")
	}
}

package novareel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribeKnownCodes(t *testing.T) {
	codes := []string{
		CodeAccessDenied,
		CodeValidation,
		CodeResourceNotFound,
		CodeThrottling,
		CodeQuotaExceeded,
		CodeServiceUnavailable,
		CodeModelNotReady,
		CodeTimeout,
	}
	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			text := Describe(&RemoteError{Code: code, Message: "details"})
			require.NotEmpty(t, text)
			require.Contains(t, text, code)
		})
	}
}

func TestDescribeUnknownCode(t *testing.T) {
	text := Describe(&RemoteError{Code: "SomethingNewException", Message: "?"})
	require.NotEmpty(t, text)
	require.Contains(t, text, "SomethingNewException")
}

func TestDescribeWrappedError(t *testing.T) {
	err := fmt.Errorf("submitting job: %w", &RemoteError{Code: CodeThrottling})
	require.Contains(t, Describe(err), "throttled")
}

func TestDescribeConfigError(t *testing.T) {
	text := Describe(&ConfigError{Field: "AWS_ACCESS_KEY_ID"})
	require.Contains(t, text, "AWS_ACCESS_KEY_ID")
	require.Contains(t, text, ".env")
}

func TestDescribeValidationError(t *testing.T) {
	text := Describe(&ValidationError{Reason: "prompt is required"})
	require.Contains(t, text, "prompt is required")
}

func TestDescribeFallback(t *testing.T) {
	require.NotEmpty(t, Describe(errors.New("boom")))
	require.NotEmpty(t, Describe(nil))
}

func TestRemoteErrorString(t *testing.T) {
	err := &RemoteError{Code: CodeAccessDenied, Message: "not authorized"}
	require.Equal(t, "AccessDeniedException: not authorized", err.Error())
	require.Equal(t, CodeTimeout, (&RemoteError{Code: CodeTimeout}).Error())
}

package novareel

import (
	"errors"
	"fmt"
)

// ConfigError reports a missing or malformed configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required configuration: %s", e.Field)
}

// ValidationError reports malformed request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// RemoteError is a mapped failure response from the Bedrock API. Code
// is the service error code (e.g. "ThrottlingException") or one of the
// client-side codes below.
type RemoteError struct {
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Remote error codes recognized by Describe. These match the Bedrock
// service error codes, plus CodeTimeout for a bounded wait that
// elapsed locally.
const (
	CodeAccessDenied       = "AccessDeniedException"
	CodeValidation         = "ValidationException"
	CodeResourceNotFound   = "ResourceNotFoundException"
	CodeThrottling         = "ThrottlingException"
	CodeQuotaExceeded      = "ServiceQuotaExceededException"
	CodeServiceUnavailable = "ServiceUnavailableException"
	CodeModelNotReady      = "ModelNotReadyException"
	CodeTimeout            = "Timeout"
)

var guidance = map[string]string{
	CodeAccessDenied:       "Access denied. Check that your IAM identity has bedrock:InvokeModel and bedrock:StartAsyncInvoke permissions and that model access is granted in the Bedrock console.",
	CodeValidation:         "The request was rejected as invalid. Check the prompt, duration and other request parameters.",
	CodeResourceNotFound:   "Resource not found. Check the model id and that the model is available in your region.",
	CodeThrottling:         "The request was throttled. Wait a moment before retrying, or reduce your request rate.",
	CodeQuotaExceeded:      "Service quota exceeded. Request a quota increase in the AWS console or wait for in-flight jobs to finish.",
	CodeServiceUnavailable: "The service is temporarily unavailable. Try again shortly.",
	CodeModelNotReady:      "The model is not ready yet. Try again in a few minutes.",
	CodeTimeout:            "The job did not reach a terminal state within the configured wait. It may still be running remotely; check it later with the status command.",
}

// Describe maps an error to human-readable guidance. It is total:
// every error yields a non-empty string, with a generic fallback for
// unrecognized errors.
func Describe(err error) string {
	if err == nil {
		return "no error"
	}
	var ce *ConfigError
	if errors.As(err, &ce) {
		return fmt.Sprintf("%s. Set it in the environment or in your .env file (see .env.example).", ce.Error())
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var re *RemoteError
	if errors.As(err, &re) {
		if g, ok := guidance[re.Code]; ok {
			return fmt.Sprintf("%s (%s)", g, re.Error())
		}
		return fmt.Sprintf("Bedrock returned an unexpected error: %s", re.Error())
	}
	return fmt.Sprintf("unexpected error: %s", err.Error())
}

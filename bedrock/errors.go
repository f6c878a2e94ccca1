package bedrock

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/jaehyun-dev/novareel"
)

// mapError converts AWS service errors into novareel.RemoteError so
// callers and the error reporter never see SDK types.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return &novareel.RemoteError{
			Code:    ae.ErrorCode(),
			Message: ae.ErrorMessage(),
		}
	}
	return err
}

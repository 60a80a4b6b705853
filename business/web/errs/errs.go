// Package errs provides types and support for turning engine errors into
// web responses.
package errs

import (
	"errors"
	"net/http"

	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/params"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
	"github.com/ardanlabs/chainrules/foundation/validate"
)

// Response is the form used for API responses from failures in the API.
type Response struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted is used to pass an error during the request through the
// application with web specific context.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (te *Trusted) Error() string {
	return te.Err.Error()
}

// Unwrap returns the wrapped error.
func (te *Trusted) Unwrap() error {
	return te.Err
}

// IsTrusted checks if an error of type Trusted exists.
func IsTrusted(err error) bool {
	var te *Trusted
	return errors.As(err, &te)
}

// GetTrusted returns a copy of the Trusted pointer.
func GetTrusted(err error) *Trusted {
	var te *Trusted
	if !errors.As(err, &te) {
		return nil
	}
	return te
}

// =============================================================================

// Classify wraps the engine errors that are caused by the caller with the
// status that describes them. Any other error is returned as is.
func Classify(err error) error {
	if err == nil || IsTrusted(err) {
		return err
	}

	switch {
	case errors.Is(err, chain.ErrUnsupportedChain),
		errors.Is(err, params.ErrParameterNotDefined),
		errors.Is(err, hardfork.ErrUnknownEIP):
		return NewTrusted(err, http.StatusNotFound)

	case errors.Is(err, hardfork.ErrUnknownUpgrade),
		errors.Is(err, hardfork.ErrInvalidDefinition),
		errors.Is(err, chain.ErrInvalidIdentifierType),
		errors.Is(err, chain.ErrConfigValidation),
		errors.Is(err, timeline.ErrMissingActivationCondition),
		errors.Is(err, timeline.ErrInvalidRecord),
		validate.IsFieldErrors(err):
		return NewTrusted(err, http.StatusBadRequest)
	}

	return err
}

// Fields returns the field level messages carried by the error, if any.
func Fields(err error) map[string]string {
	if fe := validate.GetFieldErrors(err); fe != nil {
		return fe.Fields()
	}

	var ve *chain.ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}

	return nil
}

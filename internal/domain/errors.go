package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal installer failures.
type ErrorKind string

const (
	KindConfig     ErrorKind = "config"
	KindFetch      ErrorKind = "fetch"
	KindProfile    ErrorKind = "profile"
	KindInvocation ErrorKind = "invocation"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrConfig       = &InstallError{Kind: KindConfig}
	ErrFetch        = &InstallError{Kind: KindFetch}
	ErrProfileWrite = &InstallError{Kind: KindProfile}
	ErrInvocation   = &InstallError{Kind: KindInvocation}
)

// InstallError is a fatal failure of one install step.
type InstallError struct {
	Kind    ErrorKind
	Message string
	Path    string
	Err     error
}

// Error implements the error interface
func (e *InstallError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind) + " error"
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap implements the errors.Unwrap interface
func (e *InstallError) Unwrap() error {
	return e.Err
}

// Is matches any InstallError of the same kind.
func (e *InstallError) Is(target error) bool {
	var t *InstallError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// ConfigError reports a missing or invalid configuration value.
func ConfigError(msg string, err error) error {
	return &InstallError{Kind: KindConfig, Message: msg, Err: err}
}

// FetchError wraps a network or I/O failure while downloading the installer.
func FetchError(err error) error {
	return &InstallError{Kind: KindFetch, Message: "downloading " + BinaryName, Err: err}
}

// ProfileWriteError wraps a failure to amend the shell profile at path.
func ProfileWriteError(path string, err error) error {
	return &InstallError{Kind: KindProfile, Message: "updating profile file", Path: path, Err: err}
}

// InvocationError reports a failure to run the freshly installed binary.
func InvocationError(msg string, err error) error {
	return &InstallError{Kind: KindInvocation, Message: msg, Err: err}
}

// KindOf returns the kind of err, or "" when err is not an InstallError.
func KindOf(err error) ErrorKind {
	var ie *InstallError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return ""
}

// ErrExecutableNotFound is returned when a program is not on the searched PATH.
var ErrExecutableNotFound = errors.New("executable file not found in PATH")

// UnsupportedShellError is returned when SHELL matches none of the supported shells.
func UnsupportedShellError(binDir string) error {
	return ConfigError(fmt.Sprintf("could not detect shell, manually add %s to your PATH.", binDir), nil)
}

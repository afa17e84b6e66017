// Package errors provides standardized error handling for lazytree.
// It defines common error types, constants, and helper functions for
// consistent error creation, wrapping, and handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Tree error kinds
	LoadFailed
	NodeNotFound
	InvalidNode
	// Source error kinds
	SourceNotFound
	SourceReadFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// Common error constants for frequently occurring errors
var (
	ErrNodeNotFound  = NewTreeError("node not found", "", NodeNotFound, nil)
	ErrInvalidNode   = NewTreeError("invalid node", "", InvalidNode, nil)
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// TreeError represents errors tied to a specific node in the tree
type TreeError struct {
	ApplicationError
	nodeID string
}

// NewTreeError creates a new tree error
func NewTreeError(msg string, nodeID string, kind ErrorKind, err error) *TreeError {
	return &TreeError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		nodeID: nodeID,
	}
}

// NewLoadError creates the error recorded when a children fetch fails
func NewLoadError(nodeID string, err error) *TreeError {
	return NewTreeError("failed to load children", nodeID, LoadFailed, err)
}

// Error returns the tree error message
func (e *TreeError) Error() string {
	if e.nodeID != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.nodeID, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.nodeID)
	}
	return e.ApplicationError.Error()
}

// NodeID returns the node identifier associated with the error
func (e *TreeError) NodeID() string {
	return e.nodeID
}

// SourceError represents errors from a data source collaborator
type SourceError struct {
	ApplicationError
	path string
}

// NewSourceError creates a new data source error
func NewSourceError(msg string, path string, kind ErrorKind, err error) *SourceError {
	return &SourceError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the source error message
func (e *SourceError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the source path associated with the error
func (e *SourceError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the configuration error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new generic application error
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new generic formatted application error
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsLoadFailed checks if the error is a failed children fetch
func IsLoadFailed(err error) bool {
	var treeErr *TreeError
	if errors.As(err, &treeErr) {
		return treeErr.Kind() == LoadFailed
	}
	return false
}

// IsNodeNotFound checks if the error is a missing node error
func IsNodeNotFound(err error) bool {
	var treeErr *TreeError
	if errors.As(err, &treeErr) {
		return treeErr.Kind() == NodeNotFound
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsSourceError checks if the error came from a data source collaborator
func IsSourceError(err error) bool {
	var srcErr *SourceError
	return errors.As(err, &srcErr)
}

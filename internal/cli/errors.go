// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/jeranaias/parley/internal/cloud"
)

// =============================================================================
// EXIT CODES
// =============================================================================

// Process exit codes. Scripts branch on these, so the mapping is part of
// the command-line contract.
const (
	ExitSuccess       = 0 // Command completed
	ExitError         = 1 // General failure
	ExitUsage         = 2 // Bad arguments or bad invocation
	ExitNotConfigured = 3 // No usable API credential
	ExitNetwork       = 4 // Transport or service failure
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError indicates the command was invoked incorrectly. It maps to
// ExitUsage and its message tells the user what to type instead.
type UsageError struct {
	Command string
	Reason  string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// NewUsageError creates a usage error for the given command.
func NewUsageError(command, reason string) *UsageError {
	return &UsageError{Command: command, Reason: reason}
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// GetExitCode maps an error to its process exit code.
//
// Credential problems map to ExitNotConfigured whether they were caught
// locally (no key set) or rejected by the service (401/403), so scripts can
// distinguish "run setup" from transient failures.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	var ttyErr *TTYRequiredError
	if errors.As(err, &ttyErr) {
		return ExitUsage
	}

	if errors.Is(err, cloud.ErrNotConfigured) {
		return ExitNotConfigured
	}

	var apiErr *cloud.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == 401 || apiErr.Status == 403 {
			return ExitNotConfigured
		}
		return ExitNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ExitNetwork
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ExitNetwork
	}

	return ExitError
}

// exitOnError prints the error and terminates with its exit code. The
// exported HandleX wrappers funnel through here so every command reports
// failures the same way.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(GetExitCode(err))
}

// =============================================================================
// DIAGNOSTICS
// =============================================================================

// Output gates. Set once during Parse, before any command runs.
var (
	verboseMode bool
	quietMode   bool
)

// SetVerbose enables debug diagnostics on stderr.
func SetVerbose(enabled bool) {
	verboseMode = enabled
}

// SetQuiet suppresses informational chatter. Errors still print.
func SetQuiet(enabled bool) {
	quietMode = enabled
}

// Debugf writes a debug line to stderr when verbose mode is on.
func Debugf(format string, args ...interface{}) {
	if !verboseMode {
		return
	}
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}

// Infof writes an informational line to stderr unless quiet mode is on.
// Informational output goes to stderr so piped stdout stays clean.
func Infof(format string, args ...interface{}) {
	if quietMode {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

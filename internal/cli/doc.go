// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the command-line surface of parley.
//
// Commands are dispatched by hand from os.Args; there is no flag framework.
// Parse splits the argument list into a Command and an Args value, and each
// command has a Handle function that does the work and returns an error
// mapped to a process exit code.
//
// # Key Types
//
//   - Command: enumeration of the commands the binary understands
//   - Args: global flags plus the unconsumed remainder of the argument list
//   - ArgParser: per-command parsing of flags and positionals
//
// # Commands Overview
//
//   - (none)  full-screen TUI
//   - chat    plain line-based REPL for dumb terminals and SSH sessions
//   - ask     one-shot question, answer on stdout
//   - setup   interactive configuration wizard
//   - config  show and edit the configuration file
//   - models  list the model registry
//   - export  convert a saved transcript to another format
//   - version, help
//
// Output honors NO_COLOR, FORCE_COLOR, and whether stdout is a terminal.
package cli

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"
)

// =============================================================================
// ARGUMENT PARSER
// =============================================================================

// ArgParser parses the argument list of a single command. It understands
// --flag=value, --flag value, bare boolean flags, and positional arguments,
// in any order. Flag names are stored without their leading dashes.
type ArgParser struct {
	subcommand string
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
	raw        []string
}

// NewArgParser parses raw arguments into flags and positionals. The first
// positional argument, if any, is also recorded as the subcommand.
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
		raw:       raw,
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") {
			if eq := strings.Index(arg, "="); eq >= 0 {
				// --flag=value form
				name := strings.TrimLeft(arg[:eq], "-")
				value := arg[eq+1:]
				switch strings.ToLower(value) {
				case "true":
					p.boolFlags[name] = true
				case "false":
					p.boolFlags[name] = false
				default:
					p.flags[name] = value
				}
				continue
			}

			name := strings.TrimLeft(arg, "-")
			// --flag value form when the next token is not itself a flag;
			// otherwise a bare boolean flag.
			if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				p.flags[name] = raw[i+1]
				i++
			} else {
				p.boolFlags[name] = true
			}
			continue
		}

		p.positional = append(p.positional, arg)
	}

	if len(p.positional) > 0 {
		p.subcommand = p.positional[0]
	}

	return p
}

// Subcommand returns the first positional argument, or "" if there is none.
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of a named flag and whether it was present.
func (p *ArgParser) Flag(name string) (string, bool) {
	if v, ok := p.flags[name]; ok {
		return v, true
	}
	v, ok := p.flags[strings.TrimLeft(name, "-")]
	return v, ok
}

// FlagOrDefault returns the value of a named flag, or def when absent.
func (p *ArgParser) FlagOrDefault(name, def string) string {
	if v, ok := p.Flag(name); ok {
		return v
	}
	return def
}

// BoolFlag reports whether a boolean flag was set to true.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[strings.TrimLeft(name, "-")]
}

// HasFlag reports whether a flag was present in any form.
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	if _, ok := p.flags[name]; ok {
		return true
	}
	_, ok := p.boolFlags[name]
	return ok
}

// Positional returns the positional argument at index, or "" when out of
// range.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns the positional arguments starting at index.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return nil
	}
	return p.positional[index:]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// Raw returns the unparsed argument list.
func (p *ArgParser) Raw() []string {
	return p.raw
}

// =============================================================================
// VALUE HELPERS
// =============================================================================

// ParseBoolString parses common spellings of booleans from user input.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "on":
		return true, nil
	case "false", "no", "n", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %q (use true or false)", s)
	}
}

// JoinPositionalArgs joins positional arguments into a single string,
// preserving their order. Used by commands that accept free text.
func JoinPositionalArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

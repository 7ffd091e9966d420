// Package config loads the currenttime command's settings from flags,
// CURRENTTIME_* environment variables, a YAML config file and built-in
// defaults, in that order of precedence.
package config

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/noodlebox/currenttime"
	"github.com/noodlebox/currenttime/internal/errors"
	"github.com/noodlebox/currenttime/symbol"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// aliasSeparator splits an alias entry into its symbol and template.
const aliasSeparator = "="

// Config holds the resolved settings.
type Config struct {
	// Format is the template rendered when none is given on the command line.
	Format string `mapstructure:"format"`
	// Output selects how structured results are printed.
	Output string `mapstructure:"output"`
	// Timezone names the location readings are expressed in; "Local" is
	// the system zone.
	Timezone string `mapstructure:"timezone"`
	// Location is Timezone resolved by Load.
	Location *time.Location `mapstructure:"-"`
	// Color enables styled output.
	Color bool `mapstructure:"color"`
	// LogFile, if set, receives a rotating copy of the log.
	LogFile string `mapstructure:"log_file"`
	// Symbols lists alias symbols as "<symbol>=<template>" entries. An alias
	// renders its template against the same snapshot.
	Symbols []string `mapstructure:"symbols"`
}

// ValidOutputFormats returns the accepted Output values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON, OutputYAML}
}

// IsValidOutputFormat reports whether format is an accepted Output value.
func IsValidOutputFormat(format string) bool {
	for _, f := range ValidOutputFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// Aliases parses c.Symbols into a map from symbol to template. It fails if
// an entry is malformed, names something other than a single character,
// shadows a built-in symbol, or has a template that refers to an alias.
func (c *Config) Aliases() (map[string]string, error) {
	builtin := make(map[string]bool)
	for _, def := range currenttime.DefaultSymbols() {
		builtin[def.Symbol] = true
	}

	aliases := make(map[string]string, len(c.Symbols))
	for _, entry := range c.Symbols {
		sym, tmpl, ok := strings.Cut(entry, aliasSeparator)
		switch {
		case !ok || tmpl == "":
			return nil, errors.Wrapf(errors.ErrInvalidSymbol, "alias %q must look like <symbol>=<template>", entry)
		case !symbol.Valid(sym):
			return nil, errors.Wrapf(errors.ErrInvalidSymbol, "alias %q: symbol must be one character", entry)
		case builtin[sym]:
			return nil, errors.Wrapf(errors.ErrInvalidSymbol, "alias %q shadows a built-in symbol", entry)
		}
		aliases[sym] = tmpl
	}

	for sym, tmpl := range aliases {
		if ref, ok := referencedAlias(tmpl, aliases); ok {
			return nil, errors.Wrapf(errors.ErrSymbolCycle, "alias %q uses %%%s", sym, ref)
		}
	}
	return aliases, nil
}

// referencedAlias returns the first alias placeholder found in tmpl.
func referencedAlias(tmpl string, aliases map[string]string) (string, bool) {
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		r, _ := utf8.DecodeRuneInString(tmpl[i+1:])
		if _, ok := aliases[string(r)]; ok {
			return string(r), true
		}
	}
	return "", false
}

// Validate checks c for values that cannot be used.
func Validate(c *Config) error {
	if !IsValidOutputFormat(c.Output) {
		return errors.Wrapf(errors.ErrInvalidOutputFormat, "%q must be one of %v", c.Output, ValidOutputFormats())
	}
	if _, err := c.Aliases(); err != nil {
		return err
	}
	return nil
}

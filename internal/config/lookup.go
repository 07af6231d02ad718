package config

import (
	"strings"

	"itw/internal/logging"
)

// Validator decides whether a configured value is usable.
type Validator interface {
	Validate(value string) bool
	// FailMessage explains to the user why value from file was skipped.
	FailMessage(key, value, file string) string
}

// Lookup searches locs in order for key and returns the first value
// accepted by validator. Rejected values are reported as Important and
// the search continues with the next file.
func Lookup(logger *logging.Logger, locs Locations, key string, validator Validator) (string, bool) {
	for _, file := range locs {
		logger.Debug("checking key in config file", "key", key, "file", displayPath(file))
		if file == "" {
			continue
		}
		value, ok := Load(file, key)
		if !ok {
			logger.Debug("property not located or file inaccessible", "file", file)
			continue
		}
		logger.Debug("located value", "value", value, "file", file)
		if validator.Validate(value) {
			return value, true
		}
		logger.Important(validator.FailMessage(key, value, file))
	}
	return "", false
}

// Direct returns the first value of key found in locs, or "".
func Direct(logger *logging.Logger, locs Locations, key string) string {
	value, _ := Lookup(logger, locs, key, acceptAll{})
	return value
}

// Bool looks up a true/false key, falling back to def.
func Bool(logger *logging.Logger, locs Locations, key string, def bool) bool {
	value, ok := Lookup(logger, locs, key, boolValidator{})
	if !ok {
		return def
	}
	return strings.EqualFold(value, "true")
}

type acceptAll struct{}

func (acceptAll) Validate(string) bool { return true }

func (acceptAll) FailMessage(string, string, string) string { return "" }

type boolValidator struct{}

func (boolValidator) Validate(value string) bool {
	return strings.EqualFold(value, "true") || strings.EqualFold(value, "false")
}

func (boolValidator) FailMessage(key, value, file string) string {
	return "Your boolean value " + value + " read from " + file + " under key " + key +
		" is not valid. Trying other config files, then using default."
}

func displayPath(file string) string {
	if file == "" {
		return "None"
	}
	return file
}

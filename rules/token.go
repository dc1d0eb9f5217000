package rules

import "strings"

// Prefixes of canonical tag tokens.
const (
	literalPrefix  = "n"
	booleanPrefix  = "b"
	presencePrefix = "x"
)

// LiteralToken is the token for tag key=value.
func LiteralToken(key, value string) string {
	return literalPrefix + key + "=" + value
}

// BooleanToken is the token for a tag with a boolean value. It returns false
// if value is not a recognized spelling of a boolean.
func BooleanToken(key, value string) (string, bool) {
	b, ok := NamedBoolean(value)
	if !ok {
		return "", false
	}
	return booleanPrefix + key + "=" + b, true
}

// PresenceToken is the token for the presence of key, whatever its value.
func PresenceToken(key string) string {
	return presencePrefix + key
}

// NamedBoolean maps the common spellings of boolean tag values to
// "true" or "false".
func NamedBoolean(value string) (string, bool) {
	switch strings.ToLower(value) {
	case "true", "yes", "1", "on":
		return "true", true
	case "false", "no", "0", "off":
		return "false", true
	}
	return "", false
}

// Tokens returns the canonical tokens for a tag, in lookup order:
// literal, boolean (if applicable) and presence.
func Tokens(key, value string) []string {
	if b, ok := BooleanToken(key, value); ok {
		return []string{LiteralToken(key, value), b, PresenceToken(key)}
	}
	return []string{LiteralToken(key, value), PresenceToken(key)}
}

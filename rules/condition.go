package rules

import (
	"fmt"
	"strings"

	"github.com/npillmayer/mapstyle/feature"
	"github.com/npillmayer/mapstyle/maybe"
)

// Predicate tests the tags of a feature.
type Predicate func(feature.Tags) bool

// Condition selects the features a rule applies to. It is either an exact
// tag token or a predicate. Predicates carry a code, which identifies
// them the way a token identifies an exact condition.
type Condition struct {
	token string
	code  string
	test  Predicate
}

// Exact creates a condition for a canonical tag token, see LiteralToken,
// BooleanToken and PresenceToken.
func Exact(token string) Condition {
	return Condition{token: token, code: token}
}

// Matching creates a predicate condition. code has to identify the
// predicate; rules with the same code are considered to be the same
// overlay when collecting line modifiers.
func Matching(code string, p Predicate) Condition {
	return Condition{code: code, test: p}
}

// When creates a condition from key conditions. A single key condition
// yields an exact condition. More than one yields a predicate which holds
// if every key condition holds.
func When(conds ...KeyCondition) Condition {
	switch len(conds) {
	case 0:
		return Condition{}
	case 1:
		return Exact(conds[0].Token())
	}
	var code strings.Builder
	for _, c := range conds {
		code.WriteString(c.Token())
	}
	cc := append([]KeyCondition(nil), conds...)
	return Matching(code.String(), func(tags feature.Tags) bool {
		for _, c := range cc {
			if !c.Matches(tags) {
				return false
			}
		}
		return true
	})
}

// IsExact is true for conditions looked up by token.
func (c Condition) IsExact() bool {
	return c.test == nil && c.token != ""
}

// IsPredicate is true for conditions evaluated by a predicate.
func (c Condition) IsPredicate() bool {
	return c.test != nil
}

// Token returns the tag token of an exact condition, "" otherwise.
func (c Condition) Token() string {
	return c.token
}

// Code identifies a condition: the token for exact conditions, the
// predicate code otherwise.
func (c Condition) Code() string {
	return c.code
}

// Accepts evaluates a predicate condition. Exact conditions are matched by
// the index and never by Accepts.
func (c Condition) Accepts(tags feature.Tags) bool {
	if c.test == nil {
		return false
	}
	return c.test(tags)
}

func (c Condition) String() string {
	if c.IsExact() {
		return c.token
	}
	return "?" + c.code
}

// --- Key conditions --------------------------------------------------------

// KeyCondition tests a single tag. If Value is set, the tag has to have
// exactly this value. If Boolean is set, the tag has to be a boolean of this
// truth value. Otherwise the key just has to be present.
type KeyCondition struct {
	Key     string
	Value   maybe.Maybe[string]
	Boolean maybe.Maybe[bool]
}

// Tag is the key condition key=value.
func Tag(key, value string) KeyCondition {
	return KeyCondition{Key: key, Value: maybe.Just(value)}
}

// Bool is the key condition for a boolean tag.
func Bool(key string, b bool) KeyCondition {
	return KeyCondition{Key: key, Boolean: maybe.Just(b)}
}

// Has is the key condition for the presence of key.
func Has(key string) KeyCondition {
	return KeyCondition{Key: key}
}

// Token returns the canonical token of the key condition.
func (kc KeyCondition) Token() string {
	if v, ok := kc.Value.Get(); ok {
		return LiteralToken(kc.Key, v)
	}
	if b, ok := kc.Boolean.Get(); ok {
		t, _ := BooleanToken(kc.Key, fmt.Sprintf("%t", b))
		return t
	}
	return PresenceToken(kc.Key)
}

// Matches tests the tags of a feature.
func (kc KeyCondition) Matches(tags feature.Tags) bool {
	v, ok := tags.Get(kc.Key)
	if !ok {
		return false
	}
	if want, ok := kc.Value.Get(); ok && want != v {
		return false
	}
	if want, ok := kc.Boolean.Get(); ok {
		have, isBool := NamedBoolean(v)
		if !isBool || have != fmt.Sprintf("%t", want) {
			return false
		}
	}
	return true
}

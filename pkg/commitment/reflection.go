package commitment

import (
	"fmt"
	"strings"
)

// Reflection is the user's periodic "was this worth it" answer. The zero
// value means no reflection has been recorded.
type Reflection string

const (
	ReflectionNone    Reflection = ""
	ReflectionYes     Reflection = "yes"
	ReflectionNeutral Reflection = "neutral"
	ReflectionNo      Reflection = "no"
)

func (r Reflection) String() string {
	if r == ReflectionNone {
		return "unreviewed"
	}
	return string(r)
}

// ParseReflection maps a CLI token to a reflection state. "none" clears it.
func ParseReflection(raw string) (Reflection, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none", "clear":
		return ReflectionNone, nil
	case "yes", "y", "worth", "keep":
		return ReflectionYes, nil
	case "neutral", "meh", "unsure":
		return ReflectionNeutral, nil
	case "no", "n", "drop":
		return ReflectionNo, nil
	}
	return ReflectionNone, fmt.Errorf("commitment: unknown reflection %q", raw)
}

// AllReflections lists the recordable states (excludes the unset state).
func AllReflections() []Reflection {
	return []Reflection{ReflectionYes, ReflectionNeutral, ReflectionNo}
}

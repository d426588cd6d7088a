package utils

import "fmt"

// EnumValidator returns a field validator that accepts only the listed
// values. Used for status and risk columns kept as plain strings.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not allowed", s)
	}
}

package settings

import "slices"

var namedKeys = []string{
	"Left", "Right", "Up", "Down",
	"Space", "Enter", "Escape", "Tab", "Backspace",
}

// KeyNames returns every key name a binding may use: the named keys, the
// letters A-Z and the digits 0-9. Front ends map each of them.
func KeyNames() []string {
	names := slices.Clone(namedKeys)
	for c := 'A'; c <= 'Z'; c++ {
		names = append(names, string(c))
	}
	for c := '0'; c <= '9'; c++ {
		names = append(names, string(c))
	}
	return names
}

// ValidKey reports whether name is a known key name.
func ValidKey(name string) bool {
	if len(name) == 1 {
		c := name[0]
		return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
	}
	return slices.Contains(namedKeys, name)
}

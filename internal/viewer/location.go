package viewer

import "strings"

// Location identifies viewable content: a local filesystem path or a remote
// URL. It is immutable and used as an opaque key for equality and display.
type Location struct {
	value  string
	remote bool
}

// PathLocation creates a Location for a local filesystem path.
func PathLocation(path string) Location {
	return Location{value: path}
}

// URLLocation creates a Location for a remote URL.
func URLLocation(url string) Location {
	return Location{value: url, remote: true}
}

// ParseLocation reconstructs a Location from its string form. A http or
// https scheme prefix marks a remote location; anything else is a path.
func ParseLocation(s string) Location {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return URLLocation(s)
	}
	return PathLocation(s)
}

// String returns the path or URL.
func (l Location) String() string {
	return l.value
}

// IsRemote reports whether the location is a remote URL.
func (l Location) IsRemote() bool {
	return l.remote
}

// IsZero reports whether the location is the empty value.
func (l Location) IsZero() bool {
	return l.value == ""
}

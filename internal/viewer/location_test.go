package viewer

import "testing"

func TestParseLocation(t *testing.T) {
	tests := []struct {
		input  string
		remote bool
	}{
		{"https://example.com/readme.md", true},
		{"http://example.com", true},
		{"/home/user/notes.md", false},
		{"notes.md", false},
		{"httpdocs/index.md", false},
	}

	for _, tt := range tests {
		l := ParseLocation(tt.input)
		if l.IsRemote() != tt.remote {
			t.Errorf("ParseLocation(%q).IsRemote() = %v, want %v", tt.input, l.IsRemote(), tt.remote)
		}
		if l.String() != tt.input {
			t.Errorf("ParseLocation(%q).String() = %q", tt.input, l.String())
		}
	}
}

func TestLocationRoundTrip(t *testing.T) {
	for _, l := range []Location{
		PathLocation("/tmp/readme.md"),
		URLLocation("https://example.com/doc.md"),
	} {
		if got := ParseLocation(l.String()); got != l {
			t.Errorf("round trip changed %q: remote %v -> %v", l.String(), l.IsRemote(), got.IsRemote())
		}
	}
}

func TestLocationZero(t *testing.T) {
	var l Location
	if !l.IsZero() {
		t.Error("zero Location should report IsZero")
	}
	if PathLocation("x").IsZero() {
		t.Error("non-empty Location should not report IsZero")
	}
}

package core

import (
	"testing"
)

func TestIDFromLocator(t *testing.T) {
	tests := []struct {
		name    string
		locator string
	}{
		{
			name:    "absolute file path",
			locator: "/home/user/notes/apple.txt",
		},
		{
			name:    "collection locator",
			locator: "users/alice",
		},
		{
			name:    "empty string",
			locator: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromLocator(tt.locator)
			id2 := IDFromLocator(tt.locator)

			if id1 != id2 {
				t.Errorf("IDFromLocator() produced different IDs for same locator: %s vs %s", id1, id2)
			}
			if len(id1) != 16 {
				t.Errorf("IDFromLocator() = %q, want 16 hex characters", id1)
			}
		})
	}
}

func TestIDFromLocator_Different(t *testing.T) {
	id1 := IDFromLocator("users/alice")
	id2 := IDFromLocator("users/bob")

	if id1 == id2 {
		t.Errorf("IDFromLocator() produced same ID for different locators")
	}
}

func TestSourceKind_String(t *testing.T) {
	tests := []struct {
		kind SourceKind
		want string
	}{
		{SourceFileNames, "file"},
		{SourceFileContents, "fileContents"},
		{SourceDatabase, "database"},
		{SourceKind(42), "SourceKind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("SourceKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseSourceKind(t *testing.T) {
	tests := []struct {
		input   string
		want    SourceKind
		wantErr bool
	}{
		{input: "file", want: SourceFileNames},
		{input: "name", want: SourceFileNames},
		{input: "content", want: SourceFileContents},
		{input: "fileContents", want: SourceFileContents},
		{input: "database", want: SourceDatabase},
		{input: "db", want: SourceDatabase},
		{input: "bogus", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSourceKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSourceKind(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSourceKind(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSourceKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

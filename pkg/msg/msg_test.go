package msg

import (
	"errors"
	"testing"
)

const testMessages = `
app:
  plain: "Hello"
  field:
    one: "Value {0}"
    two: "First {0}, second {1}"
`

func TestGetMessage(t *testing.T) {
	if err := Load([]byte(testMessages)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{"no placeholders", "app.plain", nil, "Hello"},
		{"string arg", "app.field.one", []interface{}{"abc"}, "Value abc"},
		{"numeric args", "app.field.two", []interface{}{1, 2.5}, "First 1, second 2.5"},
		{"error arg", "app.field.one", []interface{}{errors.New("boom")}, "Value boom"},
		{"struct arg", "app.field.one", []interface{}{struct {
			Name string `json:"name"`
		}{"x"}}, `Value {"name":"x"}`},
		{"missing key", "app.missing", nil, "Message not found: app.missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.want {
				t.Fatalf("GetMessage(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoadMergesMessages(t *testing.T) {
	if err := Load([]byte(testMessages)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Load([]byte("app:\n  extra: \"More\"\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetMessage("app.plain"); got != "Hello" {
		t.Fatalf("expected earlier message to survive, got %q", got)
	}
	if got := GetMessage("app.extra"); got != "More" {
		t.Fatalf("expected merged message, got %q", got)
	}
}

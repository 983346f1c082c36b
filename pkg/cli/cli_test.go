package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{name: "text", input: "text", want: FormatText},
		{name: "json", input: "json", want: FormatJSON},
		{name: "empty defaults to text", input: "", want: FormatText},
		{name: "unknown", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOutputFormat(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOutputFormat(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatJSON)

	data := map[string]interface{}{"file": "token.json", "valid": true}
	if err := formatter.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() returned error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["file"] != "token.json" {
		t.Errorf("decoded file = %v, want token.json", decoded["file"])
	}
	if !strings.Contains(buf.String(), "  ") {
		t.Error("expected indented JSON output")
	}
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter(FormatText)

	if err := formatter.FormatTo(&buf, "2 file(s) valid"); err != nil {
		t.Fatalf("FormatTo() returned error: %v", err)
	}
	if got := buf.String(); got != "2 file(s) valid\n" {
		t.Errorf("FormatTo() wrote %q", got)
	}
}

func TestCommandError(t *testing.T) {
	cause := errors.New("validation failed")
	err := NewCommandError("validate", cause)

	if !strings.Contains(err.Error(), "validate") {
		t.Errorf("Error() = %q, missing command name", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("CommandError should unwrap to its cause")
	}
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("server.listen_address", "invalid address")
	if !strings.Contains(err.Error(), "server.listen_address") {
		t.Errorf("Error() = %q, missing field", err.Error())
	}

	bare := NewConfigError("", "file not found")
	if strings.Contains(bare.Error(), " in ") {
		t.Errorf("Error() = %q, should omit field clause", bare.Error())
	}
}

func TestSimpleProgress(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressReporter(&buf)

	progress.Start(2)
	progress.Advance("a.json")
	progress.Advance("b.json")
	progress.Finish()

	out := buf.String()
	if !strings.Contains(out, "2/2") {
		t.Errorf("progress output %q missing completion marker", out)
	}
	if !strings.Contains(out, "a.json") {
		t.Errorf("progress output %q missing file label", out)
	}
}

func TestSimpleProgressZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressReporter(&buf)

	progress.Start(0)
	progress.Finish()

	// A zero-item run should not render a bar, only the trailing newline.
	if got := buf.String(); got != "\n" {
		t.Errorf("progress output %q, want newline only", got)
	}
}

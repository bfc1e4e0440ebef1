package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesKeyword(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Keyword("process")

	// Should contain the keyword
	if !strings.Contains(result, "process") {
		t.Errorf("Keyword() result should contain keyword, got: %s", result)
	}
}

func TestStylesDim(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Dim("dimmed text")

	// Should contain the text
	if !strings.Contains(result, "dimmed text") {
		t.Errorf("Dim() result should contain text, got: %s", result)
	}
}

func TestStylesWarning(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Warning("warning message")

	// Should contain the message
	if !strings.Contains(result, "warning") {
		t.Errorf("Warning() result should contain message, got: %s", result)
	}
}

package util

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogLevelAndCategoryGate(t *testing.T) {
	oldLevel, oldCategories := GLOBAL_LOG_LEVEL, GLOBAL_LOG_CATEGORIES
	defer func() {
		GLOBAL_LOG_LEVEL, GLOBAL_LOG_CATEGORIES = oldLevel, oldCategories
		SetLogOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetLogOutput(&buf)
	GLOBAL_LOG_LEVEL = LogLevelInfo
	GLOBAL_LOG_CATEGORIES = LogRegion

	LogRegionInfo("visible")
	LogRegionDebug("too verbose")
	LogExportInfo("wrong category")

	out := buf.String()
	if !strings.Contains(out, "visible") {
		t.Errorf("expected info line in output, got %q", out)
	}
	if strings.Contains(out, "too verbose") {
		t.Errorf("debug line should be filtered at info level, got %q", out)
	}
	if strings.Contains(out, "wrong category") {
		t.Errorf("export line should be filtered by category, got %q", out)
	}
}

func TestClampInt(t *testing.T) {
	cases := []struct{ in, want int }{{-3, 1}, {1, 1}, {50, 50}, {101, 100}}
	for _, c := range cases {
		if got := ClampInt(c.in, 1, 100); got != c.want {
			t.Errorf("ClampInt(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

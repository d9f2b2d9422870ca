package starfall

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	fn()
	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugLogWritesStats(t *testing.T) {
	h := testHero()
	h.SetDebugMode(true)
	defer h.SetDebugMode(false)

	output := captureStderr(t, func() {
		h.debugLog(debugStats{meteors: 15, respawns: 3, offset: Vec2{0.5, -0.25}})
	})
	for _, want := range []string{"[starfall] tick:", "meteors: 15", "respawns: 3", "offset: (0.500, -0.250)"} {
		if !strings.Contains(output, want) {
			t.Errorf("debug output missing %q, got: %q", want, output)
		}
	}
}

func TestDebugLogSilentInReleaseMode(t *testing.T) {
	h := testHero()
	output := captureStderr(t, func() {
		h.debugLog(debugStats{meteors: 15})
	})
	if output != "" {
		t.Errorf("expected no output, got: %q", output)
	}
}

func TestDebugfFollowsGlobalFlag(t *testing.T) {
	h := testHero()
	output := captureStderr(t, func() { debugf("star: %s", "quiet") })
	if output != "" {
		t.Errorf("expected no output, got: %q", output)
	}

	h.SetDebugMode(true)
	defer h.SetDebugMode(false)
	output = captureStderr(t, func() { debugf("star: %s", "loud") })
	if output != "[starfall] star: loud\n" {
		t.Errorf("debugf output = %q", output)
	}
}

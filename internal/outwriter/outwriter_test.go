package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcoder4/backpack/config"
	"github.com/dcoder4/backpack/idcard"
	"github.com/dcoder4/backpack/internal/contract"
	"github.com/dcoder4/backpack/timepiece"
)

// testConfig returns a config with a fixed width so output does not depend
// on the test terminal.
func testConfig() *contract.Config {
	return &contract.Config{
		Capacity:   10,
		Iterations: 4,
		Precision:  4,
		Width:      120,
	}
}

// TestWriteTimerStatsTable checks that every scope appears with its
// statistics in pre-order.
func TestWriteTimerStatsTable(t *testing.T) {
	clk := clock.NewMock()
	root, err := timepiece.NewScopeTimer("root", 10, timepiece.WithClock(clk))
	require.NoError(t, err)
	task, err := root.Child("task")
	require.NoError(t, err)
	task.Enter()
	clk.Add(250 * time.Millisecond)
	task.Exit()

	var buf bytes.Buffer
	require.NoError(t, writeTimerStatsTable(root, testConfig(), &buf))

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "scope")
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "root.task")
	assert.Contains(t, out, "0.2500")
	assert.Contains(t, out, "4.0000")
}

// TestWriteTicker checks the rendered ticker line and the summary line.
func TestWriteTicker(t *testing.T) {
	clk := clock.NewMock()
	ticker, err := timepiece.NewTicker(10, timepiece.WithClock(clk))
	require.NoError(t, err)
	ticker.Mark()
	clk.Add(100 * time.Millisecond)
	ticker.Mark()
	clk.Add(100 * time.Millisecond)
	ticker.Mark()

	var buf bytes.Buffer
	require.NoError(t, writeTicker(ticker, testConfig(), &buf))

	out := buf.String()
	assert.Contains(t, out, "<Ticker intervals=[0.1000, 0.1000]")
	assert.Contains(t, out, "Mean interval 0.1000s at 10.0000 Hz over 2 samples")
}

// TestWriteIdentityTable checks field rows, sorted tags and the partial
// resolution notice.
func TestWriteIdentityTable(t *testing.T) {
	identity := &idcard.AutoIdentity{
		ApplicationID:          "app-1",
		ApplicationName:        "watcher",
		ApplicationStatus:      contract.RunningStatus,
		ApplicationCreatedTime: time.Date(2022, 2, 22, 22, 22, 22, 0, time.UTC),
		ApplicationTags:        map[string]string{"zone": "yard", "env": "prod"},
		DeviceID:               "device-9",
		DeviceName:             "gate-camera",
	}

	var buf bytes.Buffer
	require.NoError(t, writeIdentityTable(identity, &buf))

	out := buf.String()
	assert.Contains(t, out, "app-1")
	assert.Contains(t, out, "watcher")
	assert.Contains(t, out, "2022-02-22 22:22:22")
	assert.Contains(t, out, "gate-camera")
	assert.Contains(t, out, "env")
	assert.Contains(t, out, "zone")
	assert.NotContains(t, out, "could not be fully resolved")

	// Partial identities carry a notice.
	buf.Reset()
	require.NoError(t, writeIdentityTable(&idcard.AutoIdentity{ApplicationID: "app-2"}, &buf))
	assert.Contains(t, buf.String(), "could not be fully resolved")
}

// TestWriteSerDeDocsTable checks that registered serdes show up with their
// descriptions.
func TestWriteSerDeDocsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSerDeDocsTable(config.Docs(), &buf))

	out := buf.String()
	assert.Contains(t, out, "integer-list")
	assert.Contains(t, out, "Comma-separated list of integers")
	assert.Contains(t, out, "duration")
}

// TestTruncateCell keeps short values and elides long ones from the front.
func TestTruncateCell(t *testing.T) {
	assert.Equal(t, "root.task", truncateCell("root.task", 20))
	assert.Equal(t, "...f.g.h", truncateCell("a.b.c.d.e.f.g.h", 8))
}

// TestGetMaxScopeWidth clamps into the supported range.
func TestGetMaxScopeWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "narrow terminal floors at 15", width: 40, expected: 15},
		{name: "mid terminal uses available space", width: 100, expected: 40},
		{name: "wide terminal caps at 70", width: 200, expected: 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Width = tt.width
			assert.Equal(t, tt.expected, getMaxScopeWidth(cfg))
		})
	}
}

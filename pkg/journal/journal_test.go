package journal

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRefresh(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.nowFn = func() time.Time { return time.Date(2025, 11, 2, 12, 0, 0, 0, time.UTC) }

	path, err := w.WriteRefresh(&RefreshRecord{
		Bots:       3,
		ActiveBots: 2,
		Symbols:    []string{"BTCUSDT", "ETHUSDT"},
		IndicatorErrors: map[string]string{
			"ETHUSDT": "backend: http status 500",
		},
		Success: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec RefreshRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, 1, rec.Sequence)
	assert.Equal(t, 3, rec.Bots)
	assert.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, rec.Symbols)
	assert.Contains(t, rec.IndicatorErrors["ETHUSDT"], "500")
	assert.False(t, rec.Timestamp.IsZero())

	// Sequence advances per write.
	path2, err := w.WriteRefresh(&RefreshRecord{Success: false, ErrorMessage: "roster unreachable"})
	require.NoError(t, err)
	assert.NotEqual(t, path, path2)
}

func TestWriteRefresh_NilRecord(t *testing.T) {
	w := NewWriter(t.TempDir())
	_, err := w.WriteRefresh(nil)
	require.Error(t, err)
}

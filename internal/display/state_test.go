package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModeSet(t *testing.T) ModeSet {
	t.Helper()
	return NewModeSet(map[string][]float64{
		"1280x720":  {60.0},
		"1920x1080": {144.0, 120.0, 60.0},
		"2560x1440": {165.0, 144.0},
	})
}

// assertConsistent verifies the cross-field invariant: indices in range and
// string/float fields derived from them.
func assertConsistent(t *testing.T, c Config, modes ModeSet) {
	t.Helper()
	require.Less(t, c.ResolutionIndex, modes.Len())
	require.GreaterOrEqual(t, c.ResolutionIndex, 0)
	assert.Equal(t, modes.Resolution(c.ResolutionIndex), c.Resolution)

	rates := modes.Rates(c.Resolution)
	require.Less(t, c.RefreshRateIndex, len(rates))
	require.GreaterOrEqual(t, c.RefreshRateIndex, 0)
	assert.Equal(t, rates[c.RefreshRateIndex], c.RefreshRate)
}

func newTestConfig(modes ModeSet) Config {
	res := modes.Resolution(0)
	return Config{
		Resolution:  res,
		RefreshRate: modes.Rates(res)[0],
		Scale:       100,
		DPMSOn:      true,
	}
}

func TestCycleResolution_Forward(t *testing.T) {
	modes := testModeSet(t)
	config := newTestConfig(modes)

	seen := map[string]bool{config.Resolution: true}
	for i := 0; i < modes.Len()-1; i++ {
		config.CycleResolution(modes, true)
		assertConsistent(t, config, modes)
		seen[config.Resolution] = true
	}

	// Full cycle visits every resolution before repeating.
	assert.Len(t, seen, modes.Len())

	config.CycleResolution(modes, true)
	assert.Equal(t, 0, config.ResolutionIndex, "should wrap to the first resolution")
}

func TestCycleResolution_ResetsRefreshRate(t *testing.T) {
	modes := testModeSet(t)
	config := newTestConfig(modes)

	// Move to a non-zero rate first, then change resolution.
	config.Resolution = "1920x1080"
	config.ResolutionIndex = 1
	config.RefreshRateIndex = 2
	config.RefreshRate = 60.0

	config.CycleResolution(modes, true)

	assert.Equal(t, "2560x1440", config.Resolution)
	assert.Equal(t, 0, config.RefreshRateIndex)
	assert.Equal(t, 165.0, config.RefreshRate)
}

func TestCycleResolution_RoundTrip(t *testing.T) {
	modes := testModeSet(t)

	for _, count := range []int{1, 2, 3, 7} {
		config := newTestConfig(modes)
		start := config.ResolutionIndex

		for i := 0; i < count; i++ {
			config.CycleResolution(modes, true)
		}
		for i := 0; i < count; i++ {
			config.CycleResolution(modes, false)
		}

		assert.Equal(t, start, config.ResolutionIndex, "count=%d", count)
		assertConsistent(t, config, modes)
	}
}

func TestCycleResolution_NoopOnEmptySet(t *testing.T) {
	var config Config
	config.CycleResolution(NewModeSet(nil), true)

	assert.Equal(t, Config{}, config)
}

func TestCycleRefreshRate(t *testing.T) {
	modes := testModeSet(t)
	config := Config{
		Resolution:      "1920x1080",
		ResolutionIndex: 1,
		RefreshRate:     144.0,
	}

	config.CycleRefreshRate(modes, true)
	assert.Equal(t, 120.0, config.RefreshRate)
	assert.Equal(t, 1, config.RefreshRateIndex)

	config.CycleRefreshRate(modes, true)
	config.CycleRefreshRate(modes, true)
	assert.Equal(t, 144.0, config.RefreshRate, "should wrap back to the top rate")
	assertConsistent(t, config, modes)
}

func TestCycleRefreshRate_RoundTrip(t *testing.T) {
	modes := testModeSet(t)

	for _, count := range []int{1, 3, 5} {
		config := Config{Resolution: "1920x1080", ResolutionIndex: 1, RefreshRate: 144.0}
		start := config.RefreshRateIndex

		for i := 0; i < count; i++ {
			config.CycleRefreshRate(modes, true)
		}
		for i := 0; i < count; i++ {
			config.CycleRefreshRate(modes, false)
		}

		assert.Equal(t, start, config.RefreshRateIndex, "count=%d", count)
	}
}

func TestCycleRefreshRate_NoopOnUnknownResolution(t *testing.T) {
	modes := testModeSet(t)
	config := Config{Resolution: "640x480", RefreshRate: 60.0}

	config.CycleRefreshRate(modes, true)

	assert.Equal(t, 60.0, config.RefreshRate)
	assert.Equal(t, 0, config.RefreshRateIndex)
}

func TestAdjustScale(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		increase bool
		expected int
	}{
		{"step up", 100, true, 125},
		{"step down", 100, false, 75},
		{"clamps at floor", 50, false, 50},
		{"clamps from just above floor", 60, false, 50},
		{"no ceiling", 500, true, 525},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Config{Scale: tt.start}
			config.AdjustScale(tt.increase)
			assert.Equal(t, tt.expected, config.Scale)
		})
	}
}

func TestAdjustScale_NeverBelowFloor(t *testing.T) {
	config := Config{Scale: 150}
	for i := 0; i < 20; i++ {
		config.AdjustScale(false)
		assert.GreaterOrEqual(t, config.Scale, MinScale)
	}
}

func TestCycleSelection(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		count    int
		forward  bool
		expected int
	}{
		{"forward", 0, 3, true, 1},
		{"forward wraps", 2, 3, true, 0},
		{"backward", 1, 3, false, 0},
		{"backward wraps", 0, 3, false, 2},
		{"no selection becomes first", -1, 3, true, 0},
		{"no selection becomes first backward", -1, 3, false, 0},
		{"zero count yields no selection", 0, 0, true, -1},
		{"single item stays put", 0, 1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CycleSelection(tt.current, tt.count, tt.forward))
		})
	}
}

func TestScaleFloat(t *testing.T) {
	assert.Equal(t, 1.5, Config{Scale: 150}.ScaleFloat())
	assert.Equal(t, 0.5, Config{Scale: 50}.ScaleFloat())
	assert.Equal(t, 1.0, Config{Scale: 100}.ScaleFloat())
}

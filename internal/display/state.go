package display

// The mutation methods below are total: when a precondition is unmet (no
// resolutions, no rates, nothing selected) they do nothing instead of
// failing. Operator navigation over an empty or partial monitor set must
// never surface an error.

// CycleResolution advances (or retreats) the resolution selection with
// wrap-around and resets the refresh-rate selection to the new resolution's
// highest rate. No-op when the monitor has no resolutions.
func (c *Config) CycleResolution(modes ModeSet, forward bool) {
	count := modes.Len()
	if count == 0 {
		return
	}

	if forward {
		c.ResolutionIndex = (c.ResolutionIndex + 1) % count
	} else {
		c.ResolutionIndex = (c.ResolutionIndex + count - 1) % count
	}

	c.Resolution = modes.Resolution(c.ResolutionIndex)
	c.RefreshRateIndex = 0
	c.RefreshRate = defaultRefreshRate
	if rates := modes.Rates(c.Resolution); len(rates) > 0 {
		c.RefreshRate = rates[0]
	}
}

// CycleRefreshRate advances (or retreats) the refresh-rate selection for the
// currently selected resolution with wrap-around. No-op when that resolution
// has no rates.
func (c *Config) CycleRefreshRate(modes ModeSet, forward bool) {
	rates := modes.Rates(c.Resolution)
	if len(rates) == 0 {
		return
	}

	if forward {
		c.RefreshRateIndex = (c.RefreshRateIndex + 1) % len(rates)
	} else {
		c.RefreshRateIndex = (c.RefreshRateIndex + len(rates) - 1) % len(rates)
	}

	c.RefreshRate = rates[c.RefreshRateIndex]
}

// AdjustScale steps the scale up or down by ScaleStep, clamping to MinScale.
// There is no upper bound.
func (c *Config) AdjustScale(increase bool) {
	if increase {
		c.Scale += ScaleStep
	} else {
		c.Scale -= ScaleStep
	}
	if c.Scale < MinScale {
		c.Scale = MinScale
	}
}

// CycleSelection is the generic wrap-around cursor used for both the monitor
// list and the option list. A negative current index means nothing is
// selected and becomes 0; a zero count yields -1 (no selection).
func CycleSelection(current, count int, forward bool) int {
	if count == 0 {
		return -1
	}
	if current < 0 {
		return 0
	}
	if forward {
		return (current + 1) % count
	}
	return (current + count - 1) % count
}

package display

import (
	"math"
	"strconv"
	"strings"

	"github.com/hyprtui/hyprtui/internal/hyprctl"
)

// matchTolerance is the maximum difference (Hz) at which a mode's rate is
// considered to match the monitor's reported current rate.
const matchTolerance = 0.1

// Build converts one raw hyprctl monitor record into the normalized
// (Monitor, Config) pair. It returns ok=false for records without a name;
// those outputs cannot be addressed by any hyprctl command and are dropped.
//
// Individual malformed availableModes entries are skipped without failing
// the record.
func Build(raw hyprctl.Monitor) (Monitor, Config, bool) {
	if raw.Name == "" {
		return Monitor{}, Config{}, false
	}

	modes := parseModes(raw.AvailableModes)
	active := !raw.IsDisabled()

	monitor := Monitor{
		Name:   raw.Name,
		Active: active,
		Modes:  modes,
	}

	resIdx, rateIdx := 0, 0
	if active && !modes.Empty() {
		resIdx, rateIdx = currentMode(raw, modes)
	}

	resolution := modes.Resolution(resIdx)
	rate := defaultRefreshRate
	if rates := modes.Rates(resolution); rateIdx < len(rates) {
		rate = rates[rateIdx]
	}

	config := Config{
		Resolution:       resolution,
		RefreshRate:      rate,
		Scale:            normalizeScale(raw.ScaleOrDefault()),
		ResolutionIndex:  resIdx,
		RefreshRateIndex: rateIdx,
		// Power state is not part of the query; assume on until a dpms
		// dispatch says otherwise.
		DPMSOn: true,
	}

	return monitor, config, true
}

// parseModes groups "WxH@RateHz" strings by resolution label.
func parseModes(available []string) ModeSet {
	raw := make(map[string][]float64)

	for _, mode := range available {
		res, rateStr, found := strings.Cut(mode, "@")
		if !found {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSuffix(rateStr, "Hz"), 64)
		if err != nil {
			continue
		}
		raw[res] = append(raw[res], rate)
	}

	return NewModeSet(raw)
}

// normalizeScale converts the reported float scale into the integer
// percentage representation, enforcing a positive floor first.
func normalizeScale(scale float64) int {
	return int(math.Round(math.Max(scale, 0.1) * 100.0))
}

// currentMode finds the index pair of the mode that best matches the
// monitor's reported active configuration. The resolution with minimum
// squared distance to the reported width/height wins; within it, the first
// rate within matchTolerance of the reported rate is selected, falling back
// to the highest rate.
func currentMode(raw hyprctl.Monitor, modes ModeSet) (resIdx, rateIdx int) {
	best := int64(math.MaxInt64)
	for i, res := range modes.Resolutions() {
		if d := resolutionDistance(res, raw.Width, raw.Height); d < best {
			best = d
			resIdx = i
		}
	}

	currentRate := raw.RefreshRateOrDefault()
	for i, rate := range modes.Rates(modes.Resolution(resIdx)) {
		if math.Abs(rate-currentRate) < matchTolerance {
			rateIdx = i
			break
		}
	}

	return resIdx, rateIdx
}

// resolutionDistance is the squared Euclidean distance between a parsed
// "WxH" label and the target dimensions. Labels that don't parse into
// exactly two integers get the maximum distance so they lose to any
// well-formed candidate.
func resolutionDistance(resolution string, targetW, targetH int64) int64 {
	wStr, hStr, found := strings.Cut(resolution, "x")
	if !found {
		return math.MaxInt64
	}

	w, errW := strconv.ParseInt(wStr, 10, 64)
	h, errH := strconv.ParseInt(hStr, 10, 64)
	if errW != nil || errH != nil {
		return math.MaxInt64
	}

	dw := w - targetW
	dh := h - targetH
	return dw*dw + dh*dh
}

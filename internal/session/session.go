// Package session owns the full monitor/config collection for one
// interactive run. All mutation flows through the Session; collaborators
// render from borrowed views and never hold independent copies that could
// drift out of sync.
package session

import (
	"fmt"

	"github.com/hyprtui/hyprtui/internal/display"
	"github.com/hyprtui/hyprtui/internal/hyprctl"
	"github.com/hyprtui/hyprtui/internal/logger"
	"github.com/hyprtui/hyprtui/internal/profile"
)

// Option list positions. The first three are value cyclers; the rest are
// actions fired with Enter.
const (
	OptionResolution = iota
	OptionRefreshRate
	OptionScale
	OptionApply
	OptionSetPrimary
	OptionExtendLeft
	OptionExtendRight
	OptionMirror
	OptionToggleDPMS
	OptionSave
	OptionDisable

	OptionCount = 11
)

// Querier supplies raw monitor records, normally hyprctl.Client.
type Querier interface {
	Monitors() ([]hyprctl.Monitor, error)
}

// Session is the single owning aggregate for one interactive run: the
// parallel monitor/config collections plus the two navigation cursors.
type Session struct {
	querier Querier
	runner  hyprctl.Runner
	writer  *profile.Writer
	log     logger.Logger

	monitors []display.Monitor
	configs  []display.Config

	monitorCursor int
	optionCursor  int

	info string
}

// New builds a session from a live query. Query failure is fatal; there is
// nothing to interact with.
func New(querier Querier, runner hyprctl.Runner, writer *profile.Writer) (*Session, error) {
	s := &Session{
		querier: querier,
		runner:  runner,
		writer:  writer,
		log:     logger.NewEnvLogger("[session]"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-queries the compositor and rebuilds both collections together.
// Nothing survives a reload; cursors are re-initialized.
func (s *Session) Reload() error {
	records, err := s.querier.Monitors()
	if err != nil {
		return err
	}

	monitors := make([]display.Monitor, 0, len(records))
	configs := make([]display.Config, 0, len(records))
	for _, record := range records {
		monitor, config, ok := display.Build(record)
		if !ok {
			s.log.Debug("dropping unnamed monitor record (id %d)", record.ID)
			continue
		}
		monitors = append(monitors, monitor)
		configs = append(configs, config)
	}

	s.monitors = monitors
	s.configs = configs
	s.monitorCursor = -1
	if len(monitors) > 0 {
		s.monitorCursor = 0
	}
	s.optionCursor = 0
	s.log.Debug("session loaded %d monitors", len(monitors))
	return nil
}

// Monitors returns the monitor list in session order.
func (s *Session) Monitors() []display.Monitor {
	return s.monitors
}

// ConfigAt returns a copy of the working config for monitor i.
func (s *Session) ConfigAt(i int) (display.Config, bool) {
	if i < 0 || i >= len(s.configs) {
		return display.Config{}, false
	}
	return s.configs[i], true
}

// SelectedMonitor returns the monitor cursor (-1 when nothing is selected).
func (s *Session) SelectedMonitor() int {
	return s.monitorCursor
}

// SelectedOption returns the option cursor.
func (s *Session) SelectedOption() int {
	return s.optionCursor
}

// Info returns the transient banner message, empty when there is none.
func (s *Session) Info() string {
	return s.info
}

// ClearInfo drops the transient banner message.
func (s *Session) ClearInfo() {
	s.info = ""
}

// SelectMonitor moves the monitor cursor with wrap-around and resets the
// option cursor to the top.
func (s *Session) SelectMonitor(forward bool) {
	s.monitorCursor = display.CycleSelection(s.monitorCursor, len(s.monitors), forward)
	s.optionCursor = 0
}

// SelectOption moves the option cursor with wrap-around.
func (s *Session) SelectOption(forward bool) {
	if next := display.CycleSelection(s.optionCursor, OptionCount, forward); next >= 0 {
		s.optionCursor = next
	}
}

// Adjust changes the value of the currently selected cycler option
// (resolution, refresh rate, or scale). Non-cycler options ignore it.
func (s *Session) Adjust(increase bool) {
	idx := s.monitorCursor
	if idx < 0 || idx >= len(s.configs) {
		return
	}

	switch s.optionCursor {
	case OptionResolution:
		s.configs[idx].CycleResolution(s.monitors[idx].Modes, increase)
	case OptionRefreshRate:
		s.configs[idx].CycleRefreshRate(s.monitors[idx].Modes, increase)
	case OptionScale:
		s.configs[idx].AdjustScale(increase)
	}
}

// Execute fires the currently selected action option. Cycler options and
// missing selection are no-ops.
func (s *Session) Execute() {
	switch s.optionCursor {
	case OptionApply:
		s.Apply()
	case OptionSetPrimary:
		s.SetPrimary()
	case OptionExtendLeft:
		s.Extend("left")
	case OptionExtendRight:
		s.Extend("right")
	case OptionMirror:
		s.Mirror()
	case OptionToggleDPMS:
		s.ToggleDPMS()
	case OptionSave:
		s.Save()
	case OptionDisable:
		s.Disable()
	}
}

// Apply sends the selected monitor's working mode and scale to the
// compositor. The local config keeps the operator's values whether or not
// the compositor accepted them.
func (s *Session) Apply() {
	idx := s.monitorCursor
	if idx < 0 || idx >= len(s.monitors) {
		return
	}

	cfg := s.configs[idx]
	s.runner.Run(hyprctl.ApplyCommand(
		s.monitors[idx].Name, cfg.Resolution, cfg.RefreshRate, cfg.ScaleFloat()))
}

// SetPrimary makes the selected monitor the main screen.
func (s *Session) SetPrimary() {
	idx := s.monitorCursor
	if idx < 0 || idx >= len(s.monitors) {
		return
	}

	cfg := s.configs[idx]
	s.runner.Run(hyprctl.SetPrimaryCommand(
		s.monitors[idx].Name, cfg.Resolution, cfg.RefreshRate, cfg.ScaleFloat()))
}

// Extend places the selected monitor to the left or right of the first other
// active monitor. No-op when there is no other active monitor.
func (s *Session) Extend(direction string) {
	idx := s.monitorCursor
	if idx < 0 || idx >= len(s.monitors) {
		return
	}

	_, otherName, ok := s.otherActiveMonitor(idx)
	if !ok {
		return
	}

	cfg := s.configs[idx]
	s.runner.Run(hyprctl.ExtendCommand(
		s.monitors[idx].Name, cfg.Resolution, cfg.RefreshRate, cfg.ScaleFloat(),
		direction, otherName))
}

// Mirror mirrors the selected monitor onto the first other active monitor.
// Only the scale is copied into the target's config; its resolution and
// refresh-rate bookkeeping stay untouched even though the dispatched command
// carries the source's full mode.
func (s *Session) Mirror() {
	idx := s.monitorCursor
	if idx < 0 || idx >= len(s.monitors) {
		return
	}

	otherIdx, otherName, ok := s.otherActiveMonitor(idx)
	if !ok {
		return
	}

	source := s.configs[idx]
	s.configs[otherIdx].Scale = source.Scale

	s.runner.Run(hyprctl.MirrorCommand(
		s.monitors[idx].Name, source.Resolution, source.RefreshRate,
		source.ScaleFloat(), otherName))
}

// ToggleDPMS flips the selected monitor's power state. The local flag only
// changes when the dispatch succeeds, so state and reality stay in sync.
func (s *Session) ToggleDPMS() {
	idx := s.monitorCursor
	if idx < 0 || idx >= len(s.monitors) {
		return
	}

	isOn := s.configs[idx].DPMSOn
	if s.runner.Run(hyprctl.DPMSCommand(s.monitors[idx].Name, !isOn)) {
		s.configs[idx].DPMSOn = !isOn
	}
}

// Disable switches the selected monitor off.
func (s *Session) Disable() {
	idx := s.monitorCursor
	if idx < 0 || idx >= len(s.monitors) {
		return
	}

	s.runner.Run(hyprctl.DisableCommand(s.monitors[idx].Name))
}

// SaveProfile persists the working selection of all active monitors and
// returns the resolved profile path.
func (s *Session) SaveProfile() (string, error) {
	return s.writer.Save(s.monitors, s.configs)
}

// Save persists the working selection of all active monitors and reports the
// outcome through the info banner. Persistence failures are never fatal.
func (s *Session) Save() {
	path, err := s.SaveProfile()
	if err != nil {
		s.info = fmt.Sprintf("Error saving config: %v", err)
		s.log.Warn("save failed: %v", err)
		return
	}
	s.info = "Success! Saved to " + path
}

// otherActiveMonitor finds the first active monitor that isn't the given
// one. Used as the placement target for extend and mirror actions.
func (s *Session) otherActiveMonitor(current int) (int, string, bool) {
	for i, m := range s.monitors {
		if i != current && m.Active {
			return i, m.Name, true
		}
	}
	return 0, "", false
}

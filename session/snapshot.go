package session

// Buttons lists transport affordances.
type Buttons struct {
	PlayPause bool
	Seek      bool
	Speed     bool
	Close     bool
	Stop      bool
	Resize    bool
}

// Snapshot is a read-only view of a session for renderers.
type Snapshot struct {
	ID        string
	Thumbnail string
	Small     bool

	State    PlaybackState
	Position Position
	Loaded   bool
	Speed    float64

	ControlsEnabled bool
	ControlsShown   bool
	ControlsOpacity float64
	SpeedMenuOpen   bool
	// Layout is the set of buttons the overlay carries. Buttons is the subset
	// taking input right now: transport buttons only while the overlay is shown.
	Layout  Buttons
	Buttons Buttons

	PreviewOpacity float64
	SurfaceOpacity float64
	SurfaceMounted bool

	Minimized bool
	Scale     float64
}

// Snapshot samples the session at the current clock time.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID(),
		Thumbnail: s.opts.ThumbnailSource,
		Small:     s.opts.SmallPresentation,

		State:    s.state,
		Position: s.position,
		Loaded:   s.loaded,
		Speed:    s.speed,

		ControlsEnabled: s.controls.Enabled(),
		ControlsShown:   s.controls.Shown(),
		ControlsOpacity: s.controls.Opacity(),
		SpeedMenuOpen:   s.controls.SpeedMenuOpen(),
		Layout:          s.layout(),
		Buttons:         s.buttons(),

		PreviewOpacity: s.fade.PreviewOpacity(),
		SurfaceOpacity: s.fade.SurfaceOpacity(),
		SurfaceMounted: s.mounted,

		Minimized: s.resizer.Minimized(),
		Scale:     s.resizer.Scale(),
	}
}

func (s *Session) layout() Buttons {
	if !s.controls.Enabled() {
		return Buttons{}
	}

	full := !s.opts.SmallPresentation
	return Buttons{
		PlayPause: true,
		Seek:      full,
		Speed:     full,
		Close:     s.opts.CloseButtonEnabled,
		Stop:      full && s.opts.StopButtonEnabled,
		Resize:    full && s.opts.ResizeButtonEnabled && s.ResizeOffered(),
	}
}

// buttons gates the layout on visibility. Play/pause and close stay reachable
// with the overlay hidden.
func (s *Session) buttons() Buttons {
	b := s.layout()
	if !s.controls.Shown() {
		b.Seek, b.Speed, b.Stop, b.Resize = false, false, false, false
	}
	return b
}

// Animating reports whether any presentation value is still moving, so renderers
// know to keep drawing frames.
func (s *Session) Animating() bool {
	return s.controls.opacity.Animating() ||
		s.fade.preview.Animating() ||
		s.fade.surface.Animating() ||
		s.fade.delay.Pending() ||
		s.resizer.scale.Animating()
}

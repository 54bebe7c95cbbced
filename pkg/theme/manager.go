package theme

// Change is published to subscribers after the theme or an option changes.
type Change struct {
	ID      ID
	Style   Style
	Options Options
}

type subscriber struct {
	id int
	fn func(Change)
}

// Manager holds the active Style and Options and notifies subscribers when
// either changes.
//
// Subscribers run synchronously, in the order they subscribed, on the
// goroutine that made the change. Each receives its own copy of the Style.
// A Manager is not safe for concurrent use; like the widgets it serves, it
// belongs to the UI thread.
type Manager struct {
	registry    *Registry
	id          ID
	style       Style
	options     Options
	subscribers []subscriber
	nextID      int
}

// NewManager resolves initial in reg and returns a manager using it with
// DefaultOptions. A nil reg uses DefaultRegistry.
func NewManager(reg *Registry, initial ID) (*Manager, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	s, err := reg.Resolve(initial)
	if err != nil {
		return nil, err
	}
	return &Manager{
		registry: reg,
		id:       initial,
		style:    s,
		options:  DefaultOptions(),
	}, nil
}

// Registry returns the registry themes are resolved from.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Style returns a copy of the active style.
func (m *Manager) Style() Style {
	return m.style.Clone()
}

// ThemeID returns the active theme identifier.
func (m *Manager) ThemeID() ID {
	return m.id
}

// Options returns the active options.
func (m *Manager) Options() Options {
	return m.options
}

// Current returns the Change a new subscriber would need to catch up.
func (m *Manager) Current() Change {
	return Change{ID: m.id, Style: m.style.Clone(), Options: m.options}
}

// SetTheme resolves id, replaces the active style and notifies subscribers.
// On error the active theme is unchanged and nobody is notified.
func (m *Manager) SetTheme(id ID) error {
	s, err := m.registry.Resolve(id)
	if err != nil {
		return err
	}
	m.id = id
	m.style = s
	m.publish()
	return nil
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (m *Manager) Subscribe(fn func(Change)) func() {
	id := m.nextID
	m.nextID++
	m.subscribers = append(m.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range m.subscribers {
			if s.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// SetOptions validates and replaces all options at once.
func (m *Manager) SetOptions(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	m.options = o
	m.publish()
	return nil
}

// SetBorderRounding sets the default corner radius, rejecting values outside
// [MinBorderRounding, MaxBorderRounding].
func (m *Manager) SetBorderRounding(v int) error {
	if err := ValidateBorderRounding("theme.Manager.SetBorderRounding", v); err != nil {
		return err
	}
	m.options.BorderRounding = v
	m.publish()
	return nil
}

// SetBorderThickness sets the default border width, rejecting values outside
// [MinBorderThickness, MaxBorderThickness].
func (m *Manager) SetBorderThickness(v int) error {
	if err := ValidateBorderThickness("theme.Manager.SetBorderThickness", v); err != nil {
		return err
	}
	m.options.BorderThickness = v
	m.publish()
	return nil
}

// SetBorderShape sets the default outline geometry.
func (m *Manager) SetBorderShape(s BorderShape) error {
	if err := ValidateBorderShape("theme.Manager.SetBorderShape", s); err != nil {
		return err
	}
	m.options.BorderShape = s
	m.publish()
	return nil
}

// SetProgressSize sets the default progress bar thickness in (0, 100].
func (m *Manager) SetProgressSize(v float64) error {
	o := m.options
	o.ProgressSize = v
	if err := o.Validate(); err != nil {
		return err
	}
	m.options.ProgressSize = v
	m.publish()
	return nil
}

// SetHatchSize sets the default hatch spacing; it must be positive.
func (m *Manager) SetHatchSize(v float64) error {
	o := m.options
	o.HatchSize = v
	if err := o.Validate(); err != nil {
		return err
	}
	m.options.HatchSize = v
	m.publish()
	return nil
}

// SetAnimation enables or disables widget animations.
func (m *Manager) SetAnimation(on bool) {
	m.options.Animation = on
	m.publish()
}

// SetBorderVisible toggles borders.
func (m *Manager) SetBorderVisible(on bool) {
	m.options.BorderVisible = on
	m.publish()
}

// SetBorderHoverVisible toggles the hover border color.
func (m *Manager) SetBorderHoverVisible(on bool) {
	m.options.BorderHoverVisible = on
	m.publish()
}

// SetTextVisible toggles value text on controls that draw it.
func (m *Manager) SetTextVisible(on bool) {
	m.options.TextVisible = on
	m.publish()
}

// SetHatchVisible toggles progress hatching.
func (m *Manager) SetHatchVisible(on bool) {
	m.options.HatchVisible = on
	m.publish()
}

// SetWatermark sets the watermark text and visibility.
func (m *Manager) SetWatermark(text string, visible bool) {
	m.options.WatermarkText = text
	m.options.WatermarkVisible = visible
	m.publish()
}

func (m *Manager) publish() {
	// Copy so subscribers may unsubscribe while being notified.
	subs := append([]subscriber(nil), m.subscribers...)
	for _, s := range subs {
		s.fn(m.Current())
	}
}

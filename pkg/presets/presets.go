package presets

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/roffe/txgauge/pkg/colors"
	"github.com/roffe/txgauge/pkg/gauge"
)

const prefsKey = "gaugePresets"

var ErrNotFound = errors.New("preset not found")

type Label struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

type Alarm struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Color string  `json:"color"`
}

// Gradient generates alarm bands along a color blind friendly palette.
type Gradient struct {
	Bands int     `json:"bands"`
	Alpha float64 `json:"alpha"`
	Mode  string  `json:"mode,omitempty"`
}

type Needle struct {
	Color  string  `json:"color,omitempty"`
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

// Preset is the JSON form of a gauge.Config. Colors are strings accepted
// by colors.Parse.
type Preset struct {
	Begin       float64   `json:"begin"`
	End         float64   `json:"end"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Background  string    `json:"background,omitempty"`
	Labels      []Label   `json:"labels,omitempty"`
	Graduations []float64 `json:"graduations,omitempty"`
	Alarms      []Alarm   `json:"alarms,omitempty"`
	Gradient    *Gradient `json:"gradient,omitempty"`
	Needles     []Needle  `json:"needles,omitempty"`
}

var (
	mu  sync.RWMutex
	Map = map[string]string{}
)

func init() {
	setDefaults()
}

func isSystem(name string) bool {
	for _, n := range systemNames {
		if strings.EqualFold(name, n) {
			return true
		}
	}
	return false
}

func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	var names []string
	for name := range Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Set(name string, p *Preset) error {
	if isSystem(name) {
		return fmt.Errorf("cannot replace system preset %q", name)
	}
	if _, err := p.Config(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	data, err := Encode(p)
	if err != nil {
		return err
	}
	mu.Lock()
	Map[name] = string(data)
	mu.Unlock()
	return nil
}

func Delete(name string) error {
	if isSystem(name) {
		return fmt.Errorf("cannot delete system preset %q", name)
	}
	mu.Lock()
	delete(Map, name)
	mu.Unlock()
	return nil
}

func Get(name string) (*Preset, error) {
	mu.RLock()
	data, ok := Map[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return Decode([]byte(data))
}

// GetConfig returns the gauge configuration of preset name.
func GetConfig(name string) (*gauge.Config, error) {
	p, err := Get(name)
	if err != nil {
		return nil, err
	}
	return p.Config()
}

// Load merges the presets stored in prefs, system presets always win.
func Load(prefs fyne.Preferences) error {
	stored := prefs.String(prefsKey)
	if stored == "" {
		return nil
	}
	m := map[string]string{}
	if err := json.Unmarshal([]byte(stored), &m); err != nil {
		return fmt.Errorf("presets.Load failed: %w", err)
	}
	mu.Lock()
	for k, v := range m {
		Map[k] = v
	}
	mu.Unlock()
	setDefaults()
	return nil
}

// Save stores the user presets in prefs.
func Save(prefs fyne.Preferences) error {
	mu.RLock()
	user := make(map[string]string, len(Map))
	for k, v := range Map {
		if !isSystem(k) {
			user[k] = v
		}
	}
	mu.RUnlock()
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("presets.Save failed: %w", err)
	}
	prefs.SetString(prefsKey, string(data))
	return nil
}

func Decode(data []byte) (*Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("presets.Decode failed: %w", err)
	}
	return &p, nil
}

func Encode(p *Preset) ([]byte, error) {
	return json.Marshal(p)
}

// Config converts p into a validated gauge configuration.
func (p *Preset) Config() (*gauge.Config, error) {
	cfg := gauge.DefaultConfig()
	cfg.Begin, cfg.End, cfg.Min, cfg.Max = p.Begin, p.End, p.Min, p.Max
	if p.Background != "" {
		c, err := colors.Parse(p.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		cfg.Background = c
	}
	for _, l := range p.Labels {
		cfg.Labels = append(cfg.Labels, gauge.Label{Value: l.Value, Text: l.Text})
	}
	cfg.Graduations = append(cfg.Graduations, p.Graduations...)
	for i, a := range p.Alarms {
		c, err := colors.Parse(a.Color)
		if err != nil {
			return nil, fmt.Errorf("alarm %d: %w", i, err)
		}
		cfg.Alarms = append(cfg.Alarms, gauge.AlarmBand{Low: a.Low, High: a.High, Color: c})
	}
	if g := p.Gradient; g != nil {
		cfg.Alarms = append(cfg.Alarms, gauge.GradientAlarms(p.Min, p.Max, g.Bands, g.Alpha, colors.StringToColorBlindMode(g.Mode))...)
	}
	for i, n := range p.Needles {
		spec := gauge.NeedleSpec{Length: n.Length, Width: n.Width}
		if n.Color != "" {
			c, err := colors.Parse(n.Color)
			if err != nil {
				return nil, fmt.Errorf("needle %d: %w", i, err)
			}
			spec.Color = c
		}
		cfg.Needles = append(cfg.Needles, spec)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

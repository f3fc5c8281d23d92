package canvasgauge

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txgauge/pkg/common"
	"github.com/roffe/txgauge/pkg/ebus"
	"github.com/roffe/txgauge/pkg/gauge"
	"github.com/roffe/txgauge/pkg/geometry"
)

// CanvasGauge is a fyne widget drawing a gauge.Gauge. Values may be set
// from any goroutine.
type CanvasGauge struct {
	widget.BaseWidget

	mu      sync.Mutex
	gauge   *gauge.Gauge
	surf    *fyneSurface
	size    fyne.Size
	minsize fyne.Size
}

func New(cfg *gauge.Config, values ...float64) (*CanvasGauge, error) {
	c := &CanvasGauge{
		surf:    &fyneSurface{},
		minsize: fyne.NewSize(common.DefaultMinSizeDip, common.DefaultMinSizeDip),
	}
	g, err := gauge.New(cfg, c.surf, values...)
	if err != nil {
		return nil, err
	}
	c.gauge = g
	c.ExtendBaseWidget(c)
	return c, nil
}

func (c *CanvasGauge) SetMinSize(s fyne.Size) {
	c.mu.Lock()
	c.minsize = s
	c.mu.Unlock()
	c.Refresh()
}

func (c *CanvasGauge) SetValues(values ...float64) {
	c.mu.Lock()
	c.gauge.SetValues(values...)
	c.mu.Unlock()
	c.Refresh()
}

func (c *CanvasGauge) SetValue(value float64) { c.SetValueAt(0, value) }

func (c *CanvasGauge) SetValue2(value float64) { c.SetValueAt(1, value) }

func (c *CanvasGauge) SetValueAt(i int, value float64) {
	c.mu.Lock()
	c.gauge.SetValue(i, value)
	c.mu.Unlock()
	c.Refresh()
}

func (c *CanvasGauge) Values() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gauge.Values()
}

func (c *CanvasGauge) Background() color.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gauge.Background()
}

func (c *CanvasGauge) Reconfigure(cfg *gauge.Config) error {
	c.mu.Lock()
	err := c.gauge.Reconfigure(cfg)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.Refresh()
	return nil
}

// Bind feeds topics[i] from bus into needle i. The returned function
// unsubscribes all of them.
func (c *CanvasGauge) Bind(bus *ebus.Bus, topics ...string) func() {
	cancels := make([]func(), 0, len(topics))
	for i, topic := range topics {
		cancels = append(cancels, bus.SubscribeFunc(topic, func(v float64) {
			c.SetValueAt(i, v)
		}))
	}
	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}

func (c *CanvasGauge) layout(space fyne.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.size == space {
		return
	}
	c.size = space
	c.surf.height = space.Height
	size := geometry.Point{X: float64(space.Width), Y: float64(space.Height)}
	if err := c.gauge.SetGeometry(geometry.Point{}, size); err != nil {
		log.Printf("canvasgauge: layout %v: %v", space, err)
	}
}

func (c *CanvasGauge) objects() []fyne.CanvasObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surf.Objects()
}

func (c *CanvasGauge) CreateRenderer() fyne.WidgetRenderer {
	return &canvasGaugeRenderer{c}
}

type canvasGaugeRenderer struct {
	*CanvasGauge
}

func (r *canvasGaugeRenderer) Layout(space fyne.Size) { r.layout(space) }

func (r *canvasGaugeRenderer) MinSize() fyne.Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.minsize
}

// Refresh repaints the whole widget, the gauge may have swapped any object.
func (r *canvasGaugeRenderer) Refresh() { canvas.Refresh(r.CanvasGauge) }

func (r *canvasGaugeRenderer) Destroy() {}

func (r *canvasGaugeRenderer) Objects() []fyne.CanvasObject { return r.objects() }

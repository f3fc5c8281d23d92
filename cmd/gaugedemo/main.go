package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roffe/txgauge/pkg/colors"
	"github.com/roffe/txgauge/pkg/config"
	"github.com/roffe/txgauge/pkg/ebus"
	"github.com/roffe/txgauge/pkg/gauge"
	"github.com/roffe/txgauge/pkg/layout"
	"github.com/roffe/txgauge/pkg/presets"
	"github.com/roffe/txgauge/pkg/sound"
	"github.com/roffe/txgauge/pkg/theme"
	"github.com/roffe/txgauge/pkg/widgets/canvasgauge"
)

const appID = "com.roffe.txgauge"

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

var rootCmd = &cobra.Command{
	Use:   "gaugedemo",
	Short: "Dashboard of canvas gauges fed by value generators",
	RunE:  run,
}

func init() {
	f := rootCmd.Flags()
	f.String("config", "", "dashboard file (yaml)")
	f.Duration("interval", 0, "generator tick interval")
	f.Int("columns", 0, "gauges per row")
	f.Bool("sound", false, "chime on alarm changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if f.Changed("interval") {
		cfg.Interval, _ = f.GetDuration("interval")
	}
	if f.Changed("columns") {
		cfg.Columns, _ = f.GetInt("columns")
	}
	if f.Changed("sound") {
		cfg.Sound, _ = f.GetBool("sound")
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a := app.NewWithID(appID)
	a.Settings().SetTheme(&theme.GaugeTheme{})
	if err := presets.Load(a.Preferences()); err != nil {
		log.Printf("loading presets: %v", err)
	}
	if err := registerPresets(a.Preferences(), cfg.Presets); err != nil {
		return err
	}

	bus := ebus.New(ebus.DefaultTTL)
	defer bus.Close()
	deriveTopics(bus, cfg.Derived)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	seed := time.Now().UnixNano()

	objs := make([]fyne.CanvasObject, 0, len(cfg.Gauges))
	for i, gc := range cfg.Gauges {
		gcfg, err := presets.GetConfig(gc.Preset)
		if err != nil {
			return fmt.Errorf("gauge %d: %w", i, err)
		}
		if cfg.Sound {
			gcfg.OnAlarm = chime
		}
		w, err := canvasgauge.New(gcfg, make([]float64, len(gc.Topics))...)
		if err != nil {
			return fmt.Errorf("gauge %d: %w", i, err)
		}
		if cfg.Size > 0 {
			w.SetMinSize(fyne.NewSize(cfg.Size, cfg.Size))
		}
		unbind := w.Bind(bus, gc.Topics...)
		defer unbind()
		objs = append(objs, w)

		if gc.Generator == config.GenNone {
			continue
		}
		gen := newGenerator(gc, rand.New(rand.NewSource(seed+int64(i))))
		topics := gc.Topics
		eg.Go(func() error {
			return feed(ctx, bus, cfg.Interval, topics, gen)
		})
	}

	mw := a.NewWindow("txgauge")
	mw.SetContent(container.New(layout.NewGrid(cfg.Columns, len(objs), 4), objs...))
	mw.Resize(fyne.NewSize(800, 800))
	mw.ShowAndRun()

	cancel()
	return eg.Wait()
}

func deriveTopics(bus *ebus.Bus, derived []config.Derived) {
	for _, d := range derived {
		bus.RegisterAggregator(bus.DiffAggregator(d.First, d.Second, d.Topic))
	}
}

// registerPresets adds the presets declared in the dashboard file and
// persists them next to the ones saved earlier.
func registerPresets(prefs fyne.Preferences, defs []config.Preset) error {
	if len(defs) == 0 {
		return nil
	}
	for _, def := range defs {
		p, err := presets.Decode([]byte(def.JSON))
		if err != nil {
			return fmt.Errorf("preset %q: %w", def.Name, err)
		}
		if err := presets.Set(def.Name, p); err != nil {
			return err
		}
	}
	return presets.Save(prefs)
}

func chime(e gauge.AlarmEvent) {
	log.Printf("alarm band %d (%s) at %g", e.Index, colors.Format(e.Band.Color), e.Value)
	go func() {
		if err := sound.Chime(e.Index); err != nil {
			log.Printf("alarm chime: %v", err)
		}
	}()
}

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/eventhorizon/common"
	"github.com/Carmen-Shannon/eventhorizon/engine"
	"github.com/Carmen-Shannon/eventhorizon/engine/camera"
	"github.com/Carmen-Shannon/eventhorizon/engine/config"
	"github.com/Carmen-Shannon/eventhorizon/engine/director"
	"github.com/Carmen-Shannon/eventhorizon/engine/logging"
	"github.com/Carmen-Shannon/eventhorizon/engine/resolution"
	"github.com/Carmen-Shannon/eventhorizon/engine/window"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = config.NewViper()
)

var rootCmd = &cobra.Command{
	Use:   "eventhorizon",
	Short: "Event Horizon - cinematic camera for a black hole visualization",
	Long: `Event Horizon opens a window and flies a camera around a black hole at the origin.

Controls:
  D/A       move forward/back        W/S   move up/down
  J/L       yaw                      I/K   pitch
  U/O       roll                     C     cycle camera mode
  R         reset camera             ]/[   next/previous resolution
  P         save resolution          Esc   quit

Configuration:
  1. --config flag (explicit path)
  2. $HOME/.eventhorizon/config.yaml
  3. ./config.yaml (current directory)

Environment Variables:
  EVENTHORIZON_<SECTION>_<KEY>, e.g. EVENTHORIZON_CAMERA_MOVE_SPEED=2`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	// GLFW calls must stay on the main thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.eventhorizon/config.yaml)")
	rootCmd.Flags().String("log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.Flags().Bool("profile", false, "log frame statistics every second")
	rootCmd.Flags().Bool("no-smoothing", false, "apply camera input directly without easing")
	rootCmd.Flags().Float64("frame-limit", 0, "maximum frames per second (0 = uncapped)")
	rootCmd.Flags().String("mode", "", "starting camera mode: manual, orbit, wave, spiral, flyby")

	bindFlag(v, "log.level", "log-level")
	bindFlag(v, "engine.profiling", "profile")
	bindFlag(v, "engine.frame_limit", "frame-limit")
	bindFlag(v, "camera.mode", "mode")
}

// bindFlag binds a flag to a config key. Only a flag set on the command line overrides the config.
func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.New(logging.Config{Console: true}).Fatal().Err(err).Msg("eventhorizon failed")
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if noSmoothing, _ := cmd.Flags().GetBool("no-smoothing"); noSmoothing {
		cfg.Camera.Smoothing = false
	}

	logger := logging.New(logging.Config{Level: cfg.Log.Level, Console: cfg.Log.Console})
	logger.Debug().Str("config", v.ConfigFileUsed()).Msg("configuration loaded")

	registry := newRegistry(cfg, logging.Component(logger, "resolution"))
	preset := registry.Current()

	win, err := window.TryNewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithWidth(preset.Width),
		window.WithHeight(preset.Height),
	)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithWorkers(cfg.Engine.Workers),
		engine.WithLogger(logging.Component(logger, "engine")),
	)

	controller := newController(cfg, logging.Component(logger, "camera"))
	dir := director.NewDirector(win, controller, registry,
		director.WithResizer(win),
		director.WithTaskSubmitter(eng),
		director.WithLogger(logging.Component(logger, "director")),
	)
	dir.Resize(win.Width(), win.Height())

	eng.SetTickCallback(dir.Tick)
	eng.SetRenderCallback(func(_ float64) {
		dir.Render()
	})
	eng.SetResizeCallback(dir.Resize)

	logger.Info().
		Str("mode", controller.ModeName()).
		Str("resolution", preset.Label).
		Bool("smoothing", controller.SmoothingEnabled()).
		Msg("starting")

	eng.Run()
	logger.Info().Msg("stopped")
	return nil
}

// newRegistry restores the saved preset, or picks the preset closest to the configured
// window size when nothing has been saved.
func newRegistry(cfg *config.Config, logger zerolog.Logger) resolution.Registry {
	opts := []resolution.RegistryOption{resolution.WithLogger(logger)}
	if cfg.Engine.ResolutionFile != "" {
		opts = append(opts, resolution.WithConfigPath(cfg.Engine.ResolutionFile))
	}
	registry := resolution.NewRegistry(opts...)

	if path := registry.ConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return registry
		}
	}
	registry.Select(registry.ClosestTo(cfg.Window.Width, cfg.Window.Height))
	return registry
}

// newController builds the camera at the configured position facing the origin and the
// controller around it. Zero tuning values fall back to the controller defaults.
func newController(cfg *config.Config, logger zerolog.Logger) camera.CinematicController {
	c := cfg.Camera
	start := mgl64.Vec3(c.Position)
	cam := camera.NewCamera(
		camera.WithPosition(start.X(), start.Y(), start.Z()),
		camera.WithLookAt(0, 0, 0),
	)

	opts := []camera.CinematicControllerOption{
		camera.WithRotationSpeed(common.Coalesce(c.RotationSpeed, camera.DefaultRotationSpeed)),
		camera.WithMoveSpeed(common.Coalesce(c.MoveSpeed, camera.DefaultMoveSpeed)),
		camera.WithMoveEasing(c.MoveEasing),
		camera.WithRotationEasing(c.RotationEasing),
		camera.WithSmoothing(c.Smoothing),
		camera.WithLogger(logger),
	}
	if c.Mode != "" {
		if mode, ok := camera.ParseMode(c.Mode); ok {
			opts = append(opts, camera.WithInitialMode(mode))
		} else {
			logger.Warn().Str("mode", c.Mode).Msg("unknown camera mode, starting in manual")
		}
	}
	return camera.NewCinematicController(cam, start, opts...)
}

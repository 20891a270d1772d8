package resolution

import (
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
)

// ConfigFileName is the name of the per-user file, relative to the home directory,
// that stores the selected preset index.
const ConfigFileName = ".blackhole_resolution"

// DefaultIndex is the preset selected when nothing has been persisted (1080p).
const DefaultIndex = 5

// Preset is a display resolution with a human-readable label.
type Preset struct {
	Width  int
	Height int
	Label  string
}

// presets spans 144p to 8K in ascending size.
var presets = [...]Preset{
	{Width: 256, Height: 144, Label: "144p"},
	{Width: 426, Height: 240, Label: "240p"},
	{Width: 640, Height: 360, Label: "360p"},
	{Width: 854, Height: 480, Label: "480p"},
	{Width: 1280, Height: 720, Label: "720p HD"},
	{Width: 1920, Height: 1080, Label: "1080p FHD"},
	{Width: 2560, Height: 1440, Label: "1440p QHD"},
	{Width: 2880, Height: 1620, Label: "1620p"},
	{Width: 3840, Height: 2160, Label: "2160p 4K"},
	{Width: 5120, Height: 2880, Label: "2880p 5K"},
	{Width: 7680, Height: 4320, Label: "4320p 8K"},
}

// NumPresets is the fixed number of presets.
const NumPresets = len(presets)

// Registry holds the ordered resolution presets and the current selection,
// and persists that selection to a per-user config file.
type Registry interface {
	// Current returns the selected preset.
	//
	// Returns:
	//   - Preset: the selected preset
	Current() Preset

	// CurrentIndex returns the index of the selected preset.
	//
	// Returns:
	//   - int: index in [0, NumPresets)
	CurrentIndex() int

	// CurrentName returns the label of the selected preset for UI display.
	//
	// Returns:
	//   - string: preset label
	CurrentName() string

	// Presets returns a copy of all presets in order.
	//
	// Returns:
	//   - []Preset: the presets
	Presets() []Preset

	// Next selects the following preset, wrapping to the first.
	Next()

	// Previous selects the preceding preset, wrapping to the last.
	Previous()

	// Select selects the preset at index. Out-of-range indices are ignored.
	//
	// Parameters:
	//   - index: the preset index to select
	Select(index int)

	// ClosestTo returns the index of the preset nearest to the given dimensions by
	// Manhattan distance. Ties go to the lowest index.
	//
	// Parameters:
	//   - width, height: dimensions in pixels
	//
	// Returns:
	//   - int: index of the closest preset
	ClosestTo(width, height int) int

	// Persist writes the current index to the config file. If the file cannot be
	// located or written the call does nothing.
	Persist()

	// PersistIndex writes index to the config file. Use it to save a selection captured
	// earlier, for example when the write runs on a background worker. Out-of-range
	// indices and unresolvable or unwritable files are ignored.
	//
	// Parameters:
	//   - index: the preset index to save
	PersistIndex(index int)

	// Restore reads the index from the config file. A missing or malformed file, or an
	// out-of-range value, leaves the current selection unchanged.
	Restore()

	// ConfigPath returns the resolved config file path, or "" if none can be resolved.
	//
	// Returns:
	//   - string: the config file path
	ConfigPath() string
}

type registryImpl struct {
	mu *sync.Mutex

	index int

	// configPath overrides the home-relative path when set.
	configPath string

	// homeDir resolves the user's home directory for the default path.
	homeDir func() (string, error)

	logger zerolog.Logger
}

var _ Registry = &registryImpl{}

// NewRegistry creates a Registry selecting DefaultIndex, applies options, then restores
// any previously persisted selection.
//
// Parameters:
//   - options: functional options to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryOption) Registry {
	r := &registryImpl{
		mu:      &sync.Mutex{},
		index:   DefaultIndex,
		homeDir: homedir.Dir,
		logger:  zerolog.Nop(),
	}
	for _, option := range options {
		option(r)
	}
	r.Restore()
	return r
}

func (r *registryImpl) Current() Preset {
	r.mu.Lock()
	defer r.mu.Unlock()
	return presets[r.index]
}

func (r *registryImpl) CurrentIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

func (r *registryImpl) CurrentName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return presets[r.index].Label
}

func (r *registryImpl) Presets() []Preset {
	out := make([]Preset, NumPresets)
	copy(out, presets[:])
	return out
}

func (r *registryImpl) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % NumPresets
}

func (r *registryImpl) Previous() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index - 1 + NumPresets) % NumPresets
}

func (r *registryImpl) Select(index int) {
	if index < 0 || index >= NumPresets {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = index
}

func (r *registryImpl) ClosestTo(width, height int) int {
	closest := 0
	minDiff := -1
	for i, p := range presets {
		diff := abs(p.Width-width) + abs(p.Height-height)
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

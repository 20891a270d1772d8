package resolution

import "github.com/rs/zerolog"

// RegistryOption is a functional option for configuring a Registry.
type RegistryOption func(*registryImpl)

// WithConfigPath stores the selection at path instead of ~/.blackhole_resolution.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - RegistryOption: option function to apply
func WithConfigPath(path string) RegistryOption {
	return func(r *registryImpl) {
		r.configPath = path
	}
}

// WithInitialIndex selects a preset before the persisted selection is restored.
// Out-of-range values are ignored.
//
// Parameters:
//   - index: the preset index
//
// Returns:
//   - RegistryOption: option function to apply
func WithInitialIndex(index int) RegistryOption {
	return func(r *registryImpl) {
		if index >= 0 && index < NumPresets {
			r.index = index
		}
	}
}

// WithLogger sets the logger used to report persistence outcomes.
//
// Parameters:
//   - logger: the zerolog logger to use
//
// Returns:
//   - RegistryOption: option function to apply
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *registryImpl) {
		r.logger = logger
	}
}

// WithHomeDir replaces the home directory lookup used for the default config path.
// A lookup that fails or returns "" disables persistence.
//
// Parameters:
//   - homeDir: returns the user's home directory
//
// Returns:
//   - RegistryOption: option function to apply
func WithHomeDir(homeDir func() (string, error)) RegistryOption {
	return func(r *registryImpl) {
		if homeDir != nil {
			r.homeDir = homeDir
		}
	}
}

// Package config loads linedit settings.
//
// Settings are merged from, in increasing priority:
//
//   - built-in defaults
//   - one config file: the -config path, or the first of config.toml,
//     config.yaml and config.yml in $XDG_CONFIG_HOME/linedit
//   - LINEDIT_* environment variables
//   - values passed to Config.Set, which the command line uses
//
// Typical use:
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	timeout := cfg.Editor().StatusTimeout
//
// Section accessors (Editor, Logging, Keys, Watch) return copies with
// defaults filled in. Values of the wrong type fall back to the default
// and are reported by ConfigErrors; Validate rejects them outright.
package config

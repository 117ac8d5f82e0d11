// Package config manages the hwgrade settings file.
//
// Settings live in a small YAML file that names the database to grade
// into, the log level and the layout of the grading grid. Every value
// can be overridden by a command-line flag.
//
// # Configuration File Location
//
// The file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/hwgrade/config.yaml or $HOME/.config/hwgrade/config.yaml
//   - macOS: $HOME/.config/hwgrade/config.yaml
//   - Windows: %LOCALAPPDATA%\hwgrade\config.yaml
//
// # Usage Example
//
//	settings, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	settings.Database = "/srv/grades/homework.db"
//	if err := settings.Save(""); err != nil {
//	    return err
//	}
//
// A missing file is not an error: Load returns [Defaults].
package config

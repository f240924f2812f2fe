// Package config provides the gitdock configuration directory and file.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the gitdock configuration directory.
//
// Resolution:
//   - $GITDOCK_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/gitdock if set (respects XDG on any platform)
//   - %AppData%/gitdock on Windows
//   - ~/.config/gitdock on macOS and Linux
func Dir() string {
	if dir := os.Getenv("GITDOCK_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitdock")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitdock")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitdock")
}

// Package config loads treefind configuration.
//
// Configuration is layered: built-in defaults, then a TOML file, then
// TREEFIND_* environment variables. The result is validated before use.
//
//	cfg, err := config.Load("treefind.toml")
//
// A Watcher reloads the file when it changes and delivers each new
// configuration on a channel:
//
//	w, err := config.NewWatcher("treefind.toml")
//	for cfg := range w.Updates() {
//	    session.Configure(cfg.Search)
//	}
package config

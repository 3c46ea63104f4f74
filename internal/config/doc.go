// Package config provides configuration management for tmt.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/tmt/config.yaml)
//  3. Project configuration (./.tmt/config.yaml)
//  4. A .env file in the working directory
//  5. TMT_* variables in the process environment
//
// # Configuration Structure
//
//	dataDir: /usr/share/tmt        # palette data, empty means embedded
//	logLevel: warn
//	verbose: false
//	gsettings:
//	  binary: gsettings
//	  profileListSchema: org.gnome.Terminal.ProfilesList
//	  profileSchema: org.gnome.Terminal.Legacy.Profile
//	  profilePathPrefix: /org/gnome/terminal/legacy/profiles:/
//	  fontSchema: org.gnome.desktop.interface
//	  fontKey: monospace-font-name
//	font:
//	  family: Monospace
//	defaults:
//	  background: "#000"
//	  foreground: "#fff"
//	  transparent: false
//	  transparencyPercent: 0
//	  rows: 20
//	  columns: 120
//	  cellHeightScale: 1.5
//	  cellWidthScale: 1
//	trackedProperties: [background-color, foreground-color]
//
// # Environment
//
// TMT_DATA_DIR, TMT_GSETTINGS, TMT_LOG_LEVEL, TMT_VERBOSE and TMT_FONT_FAMILY
// override the matching keys. TMT_VERBOSE is parsed with strconv.ParseBool.
package config

package asset

import _ "embed"

// DefaultScene is the built-in configuration layer, read before any file, env or flag
//
//go:embed default_scene.toml
var DefaultScene []byte

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/props/internal/adapters/cas"
	_ "go.trai.ch/props/internal/adapters/config"
	_ "go.trai.ch/props/internal/adapters/fs"
	_ "go.trai.ch/props/internal/adapters/logger"
	_ "go.trai.ch/props/internal/adapters/telemetry"
	_ "go.trai.ch/props/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/props/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/props/internal/app"
	_ "go.trai.ch/props/internal/engine/resolver"
)

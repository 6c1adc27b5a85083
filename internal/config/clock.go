package config

import "time"

// nowFunc anchors the built-in example snapshot (override in tests for determinism).
var nowFunc = time.Now

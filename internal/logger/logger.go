// Package logger exposes the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// L is the shared sugared logger. It defaults to a no-op logger so tests
// can use packages that log without calling Init.
var L = zap.NewNop().Sugar()

// Init builds the production logger and installs it as L.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	L = l.Sugar()
	return nil
}

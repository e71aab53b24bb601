package logger

import (
	"go.uber.org/zap"

	"github.com/recipebox/backend/config"
)

// New builds the application logger: human-readable in development,
// JSON in production.
func New(env config.Environment) (*zap.Logger, error) {
	if env == config.Production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

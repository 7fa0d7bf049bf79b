package logging

import "go.uber.org/zap"

// New builds the application logger. Release mode gets JSON production
// output, everything else the human-readable development encoder.
func New(ginMode string) (*zap.Logger, error) {
	if ginMode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

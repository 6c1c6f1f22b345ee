// Public domain.

package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geobridge/geobridge/internal/logger"
)

func TestSetup(t *testing.T) {
	var b bytes.Buffer
	logger.Setup(logger.Config{W: &b})
	logger.L().Debug("hidden")
	logger.L().Info("benchmark.progress", "done", 25)
	require.NotContains(t, b.String(), "hidden")
	require.Contains(t, b.String(), "msg=benchmark.progress done=25")
	require.NotContains(t, b.String(), "time=")

	b.Reset()
	logger.Setup(logger.Config{W: &b, Debug: true})
	logger.L().Debug("shown")
	require.Contains(t, b.String(), "msg=shown")

	b.Reset()
	logger.Setup(logger.Config{W: &b, Quiet: true})
	logger.L().Info("hidden")
	logger.L().Warn("galaxy.skipped", "name", "DDO154")
	require.NotContains(t, b.String(), "hidden")
	require.Contains(t, b.String(), "level=WARN")
}

package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectLoggerIsShared(t *testing.T) {
	a := GetProjectLogger()
	b := GetProjectLogger()

	assert.Same(t, a.Logger, b.Logger)
	assert.Equal(t, projectName, a.Data["app"])
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, GetProjectLogger().Logger.GetLevel())

	require.Error(t, SetLevel("loud"))

	require.NoError(t, SetLevel("info"))
	assert.Equal(t, logrus.InfoLevel, GetProjectLogger().Logger.GetLevel())
}

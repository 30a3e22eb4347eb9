package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safeline/internal/models"
)

func TestThemeCmd_RequiresLogin(t *testing.T) {
	a := newTestApp(t, "hunter2")
	lines := captureOutput(t)

	require.NoError(t, a.ThemeCmd(context.Background()))
	assert.Contains(t, strings.Join(*lines, ""), "Please login first")
	assert.Equal(t, models.ThemeLight, a.controller.Theme())
}

func TestThemeCmd_TogglesWhenLoggedIn(t *testing.T) {
	a := newTestApp(t, "hunter2", "priya", "priya@example.com", "555", "female")
	lines := captureOutput(t)
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.ThemeCmd(ctx))

	assert.Equal(t, models.ThemeDark, a.controller.Theme())
	assert.Contains(t, strings.Join(*lines, ""), "Theme: dark")
}

package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"office97/internal/gui"
	"office97/internal/window"
)

func TestPersistentShellReopensAfterLastWindowClosed(t *testing.T) {
	a := test.NewTempApp(t)
	h := newHarness(t, []string{"--excel"}, func(o *OrchestratorOptions) {
		o.Factory = gui.NewFactory(a, gui.FactoryOptions{Persistent: true})
		o.Persistent = true
	})
	require.NoError(t, h.orch.Start())
	require.Equal(t, 1, h.orch.LiveWindows())

	closer, ok := h.orch.Current().(interface{ RequestClose() })
	require.True(t, ok, "persistent windows intercept user close")
	closer.RequestClose()

	assert.Zero(t, h.orch.LiveWindows())
	assert.Zero(t, h.quits)
	assert.Len(t, a.Driver().AllWindows(), 1, "driver keeps the hidden window")

	h.orch.Activate()

	assert.Equal(t, 1, h.orch.LiveWindows())
	assert.Equal(t, PhaseDirectApp, h.orch.Phase())
	require.NotNil(t, h.orch.Current())
	windows := a.Driver().AllWindows()
	require.Len(t, windows, 1)
	assert.Equal(t, window.SpecFor(window.Excel).Title, windows[0].Title())
}

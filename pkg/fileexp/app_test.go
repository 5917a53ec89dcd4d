package fileexp

import (
	"errors"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
)

func TestNewApp(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		a := NewApp(nil)
		assert.NotNil(t, a)
		// A proxy without an application is inert.
		a.EnableMouse(true)
		a.SetFocus(nil)
		a.SetRoot(nil, true)
		a.Stop()
		assert.NoError(t, a.Run())
	})
	t.Run("not_nil", func(t *testing.T) {
		app := tview.NewApplication()
		a := NewApp(app)
		assert.NotNil(t, a)

		ap := a.(*appProxy)
		assert.NotNil(t, ap.setFocus)
		assert.NotNil(t, ap.setRoot)
		assert.NotNil(t, ap.enableMouse)
		assert.NotNil(t, ap.run)
		assert.NotNil(t, ap.stop)

		a.EnableMouse(true)
		root := tview.NewTextView()
		a.SetRoot(root, true)
		a.SetFocus(root)
	})
}

func TestAppProxy_Methods(t *testing.T) {
	var (
		focusCalled bool
		rootCalled  bool
		mouseCalled bool
		stopCalled  bool
	)
	runErr := errors.New("run failed")

	a := NewApp(nil,
		WithSetFocus(func(p tview.Primitive) { focusCalled = true }),
		WithSetRoot(func(root tview.Primitive, fullscreen bool) { rootCalled = true }),
		WithEnableMouse(func(b bool) { mouseCalled = true }),
		WithRun(func() error { return runErr }),
		WithStop(func() { stopCalled = true }),
	)

	a.SetFocus(nil)
	a.SetRoot(nil, false)
	a.EnableMouse(false)
	a.Stop()
	assert.ErrorIs(t, a.Run(), runErr)

	assert.True(t, focusCalled)
	assert.True(t, rootCalled)
	assert.True(t, mouseCalled)
	assert.True(t, stopCalled)
}

package fileexp

import (
	"github.com/rivo/tview"
)

//go:generate mockgen -source=app.go -destination=../tviewmocks/mock_app.go -package=tviewmocks

// App is the part of *tview.Application the UI depends on.
type App interface {
	Run() error
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type AppOption func(a *appProxy)

func NewApp(app *tview.Application, o ...AppOption) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithSetFocus(setFocus func(p tview.Primitive)) AppOption {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) AppOption {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppOption {
	return func(a *appProxy) {
		a.enableMouse = enableMouse
	}
}

func WithRun(run func() error) AppOption {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppOption {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	setFocus    func(p tview.Primitive)
	setRoot     func(root tview.Primitive, fullscreen bool)
	enableMouse func(bool)
	run         func() error
	stop        func()
}

func (a appProxy) EnableMouse(b bool) {
	if a.enableMouse != nil {
		a.enableMouse(b)
	}
}

func (a appProxy) SetFocus(p tview.Primitive) {
	if a.setFocus != nil {
		a.setFocus(p)
	}
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	if a.setRoot != nil {
		a.setRoot(root, fullscreen)
	}
}

func (a appProxy) Run() error {
	if a.run == nil {
		return nil
	}
	return a.run()
}

func (a appProxy) Stop() {
	if a.stop != nil {
		a.stop()
	}
}

package fileexp

import (
	"github.com/filetug/fileexp/pkg/catalog"
	"github.com/filetug/fileexp/pkg/files"
	"github.com/filetug/fileexp/pkg/fspath"
	"github.com/filetug/fileexp/pkg/navigator"
	"github.com/rivo/tview"
)

type options struct {
	maxColumns int
	navOptions []navigator.Option
}

type Option func(o *options)

// WithMaxColumns caps the number of listing columns, 0 means no cap.
func WithMaxColumns(n int) Option {
	return func(o *options) {
		o.maxColumns = n
	}
}

func WithNavigatorOptions(opts ...navigator.Option) Option {
	return func(o *options) {
		o.navOptions = append(o.navOptions, opts...)
	}
}

// Main runs the explorer in a new tview application until the user quits.
func Main(env fspath.Env, store files.Store, cat catalog.Catalog, o ...Option) error {
	app := NewApp(tview.NewApplication())
	SetupApp(app, env, store, cat, o...)
	return app.Run()
}

func SetupApp(app App, env fspath.Env, store files.Store, cat catalog.Catalog, o ...Option) *View {
	var opts options
	for _, opt := range o {
		opt(&opts)
	}
	v := NewView(app, store.RootTitle(), opts.maxColumns)
	navOptions := append([]navigator.Option{navigator.WithScreen(v)}, opts.navOptions...)
	v.SetNavigator(navigator.New(env, store, cat, navOptions...))
	app.EnableMouse(true)
	app.SetRoot(v, true)
	app.SetFocus(v.explorer)
	return v
}

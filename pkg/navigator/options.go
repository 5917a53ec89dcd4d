package navigator

import "context"

type options struct {
	ctx        context.Context
	screen     Screen
	showHidden bool
	sniffMIME  bool
	startDir   string
}

type Option func(o *options)

func WithShowHidden(v bool) Option {
	return func(o *options) {
		o.showHidden = v
	}
}

func WithScreen(screen Screen) Option {
	return func(o *options) {
		o.screen = screen
	}
}

// WithStartDir overrides the home directory as the initial directory.
func WithStartDir(dir string) Option {
	return func(o *options) {
		o.startDir = dir
	}
}

// WithContext sets the context passed to the store on every event.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func WithMIMESniffing(v bool) Option {
	return func(o *options) {
		o.sniffMIME = v
	}
}

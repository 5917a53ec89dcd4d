package fspath

import "errors"

type fakeEnv struct {
	wd      string
	wdErr   error
	vars    map[string]string
	home    string
	homeErr error
}

func (e *fakeEnv) Getwd() (string, error) {
	return e.wd, e.wdErr
}

func (e *fakeEnv) Getenv(key string) string {
	return e.vars[key]
}

func (e *fakeEnv) UserHomeDir() (string, error) {
	return e.home, e.homeErr
}

func (e *fakeEnv) Chdir(dir string) error {
	if dir == "" {
		return errors.New("empty dir")
	}
	e.wd = dir
	return nil
}

package navigator

import "errors"

type fakeEnv struct {
	wd       string
	home     string
	chdirErr error
	chdirs   []string
}

func (e *fakeEnv) Getwd() (string, error) {
	if e.wd == "" {
		return "", errors.New("no wd")
	}
	return e.wd, nil
}

func (e *fakeEnv) Getenv(key string) string {
	if key == "HOME" {
		return e.home
	}
	return ""
}

func (e *fakeEnv) UserHomeDir() (string, error) {
	return "", errors.New("no user record")
}

func (e *fakeEnv) Chdir(dir string) error {
	if e.chdirErr != nil {
		return e.chdirErr
	}
	e.wd = dir
	e.chdirs = append(e.chdirs, dir)
	return nil
}

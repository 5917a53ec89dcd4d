package fspath

import (
	"os"
	"os/user"
)

// Env is the process-wide state the resolver depends on.
type Env interface {
	Getwd() (string, error)
	Getenv(key string) string
	// UserHomeDir returns the home directory from the OS user record.
	UserHomeDir() (string, error)
	Chdir(dir string) error
}

var _ Env = OSEnv{}

// OSEnv is the Env of the running process.
type OSEnv struct{}

var userCurrent = user.Current

func (OSEnv) Getwd() (string, error) {
	return os.Getwd()
}

func (OSEnv) Getenv(key string) string {
	return os.Getenv(key)
}

func (OSEnv) UserHomeDir() (string, error) {
	u, err := userCurrent()
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

func (OSEnv) Chdir(dir string) error {
	return os.Chdir(dir)
}

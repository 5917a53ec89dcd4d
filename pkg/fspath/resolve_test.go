package fspath

import (
	"errors"
	"os"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	env := &fakeEnv{wd: "/home/user/work"}
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"empty", "", "/home/user/work"},
		{"dot", ".", "/home/user/work"},
		{"relative", "src", "/home/user/work/src"},
		{"parent", "..", "/home/user"},
		{"trailing_separator", "/tmp/", "/tmp"},
		{"dot_segments", "/a/./b/../c", "/a/c"},
		{"above_root", "/../../x", "/x"},
		{"relative_above_root", "../../../../..", "/"},
		{"root", "/", "/"},
		{"double_separators", "//usr//lib/", "/usr/lib"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(env, tt.in))
		})
	}
}

func TestResolve_GetwdError(t *testing.T) {
	env := &fakeEnv{wdErr: errors.New("cwd removed")}
	assert.Equal(t, "/docs", Resolve(env, "docs"))
}

func TestRootPath(t *testing.T) {
	assert.Equal(t, "/", RootPath(&fakeEnv{wd: "/home/user"}))
	assert.Equal(t, "/", RootPath(&fakeEnv{wdErr: errors.New("x")}))
}

func TestParent(t *testing.T) {
	assert.Equal(t, "/", Parent("/"))
	assert.Equal(t, "/", Parent("/usr"))
	assert.Equal(t, "/usr", Parent("/usr/lib"))
	assert.True(t, IsRoot("/"))
	assert.False(t, IsRoot("/usr"))
}

func TestHomeDir(t *testing.T) {
	t.Run("from_env", func(t *testing.T) {
		env := &fakeEnv{wd: "/", vars: map[string]string{"HOME": "/home/alice/"}}
		assert.Equal(t, "/home/alice", HomeDir(env))
	})
	t.Run("relative_env", func(t *testing.T) {
		env := &fakeEnv{wd: "/srv", vars: map[string]string{"HOME": "alice"}}
		assert.Equal(t, "/srv/alice", HomeDir(env))
	})
	t.Run("from_user_record", func(t *testing.T) {
		env := &fakeEnv{wd: "/", home: "/var/lib/bob"}
		assert.Equal(t, "/var/lib/bob", HomeDir(env))
	})
	t.Run("from_cwd", func(t *testing.T) {
		env := &fakeEnv{wd: "/opt/app", homeErr: errors.New("no passwd entry")}
		assert.Equal(t, "/opt/app", HomeDir(env))
	})
	t.Run("last_resort", func(t *testing.T) {
		env := &fakeEnv{wdErr: errors.New("x"), homeErr: errors.New("y")}
		assert.Equal(t, "/", HomeDir(env))
	})
}

func TestOSEnv(t *testing.T) {
	env := OSEnv{}
	wd, err := env.Getwd()
	assert.NoError(t, err)
	osWd, _ := os.Getwd()
	assert.Equal(t, osWd, wd)

	t.Setenv("FILEEXP_TEST_VAR", "value")
	assert.Equal(t, "value", env.Getenv("FILEEXP_TEST_VAR"))

	origUserCurrent := userCurrent
	t.Cleanup(func() { userCurrent = origUserCurrent })

	userCurrent = func() (*user.User, error) {
		return &user.User{HomeDir: "/home/mock"}, nil
	}
	home, err := env.UserHomeDir()
	assert.NoError(t, err)
	assert.Equal(t, "/home/mock", home)

	userCurrent = func() (*user.User, error) {
		return nil, errors.New("lookup failed")
	}
	_, err = env.UserHomeDir()
	assert.Error(t, err)
}

func TestOSEnv_Chdir(t *testing.T) {
	origWd, err := os.Getwd()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })

	dir := t.TempDir()
	assert.NoError(t, OSEnv{}.Chdir(dir))
	assert.Error(t, OSEnv{}.Chdir(dir+"/missing"))
}

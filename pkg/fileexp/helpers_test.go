package fileexp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/filetug/fileexp/pkg/catalog"
	"github.com/filetug/fileexp/pkg/files/osfile"
	"github.com/filetug/fileexp/pkg/tviewmocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeEnv struct {
	wd   string
	home string
}

func (e *fakeEnv) Getwd() (string, error) { return e.wd, nil }

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
	e.wd = dir
	return nil
}

func newViewForTest(t *testing.T, o ...Option) (*View, *tviewmocks.MockApp, string) {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "notes.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".profile"), nil, 0o644))

	ctrl := gomock.NewController(t)
	app := tviewmocks.NewMockApp(ctrl)
	app.EXPECT().EnableMouse(true).Times(1)
	app.EXPECT().SetRoot(gomock.Any(), true).Times(1)
	app.EXPECT().SetFocus(gomock.Any()).Times(1)

	env := &fakeEnv{wd: home, home: home}
	cat := catalog.New(map[string]string{"txt": "Text File"})
	v := SetupApp(app, env, osfile.NewStore(), cat, o...)
	return v, app, home
}

package fsutils

import "io/fs"

// PermString renders the nine rwx bits as "rwxr-x---".
func PermString(mode fs.FileMode) string {
	const rwx = "rwxrwxrwx"
	perm := mode.Perm()
	b := []byte("---------")
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			b[i] = rwx[i]
		}
	}
	return string(b)
}

// IsExecutable reports whether any of the owner, group or other exec bits is set.
func IsExecutable(mode fs.FileMode) bool {
	return mode.Perm()&0o111 != 0
}

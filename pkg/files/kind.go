package files

import "io/fs"

// Kind is the filesystem object type of an entry as seen without following
// symlinks. None, NotFound and Unknown are error states.
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindRegular
	KindDirectory
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindFIFO
	KindSocket
	KindUnknown
)

var kindLabels = map[Kind]string{
	KindNone:        "None [ERROR STATE]",
	KindNotFound:    "Not Found [ERROR STATE]",
	KindRegular:     "Regular File",
	KindDirectory:   "Directory",
	KindSymlink:     "Symlink",
	KindBlockDevice: "Block Device",
	KindCharDevice:  "Character Device",
	KindFIFO:        "Named IPC Pipe",
	KindSocket:      "Named IPC Socket",
	KindUnknown:     "Unknown [ERROR STATE]",
}

// String returns the fixed type label of the kind.
func (k Kind) String() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return "[ERROR STATE]"
}

// IsError reports whether k is one of the error sentinels.
func (k Kind) IsError() bool {
	switch k {
	case KindNone, KindNotFound, KindUnknown:
		return true
	default:
		return false
	}
}

// KindOf maps an Lstat mode to a Kind.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode&fs.ModeNamedPipe != 0:
		return KindFIFO
	case mode&fs.ModeSocket != 0:
		return KindSocket
	case mode&fs.ModeDevice != 0:
		if mode&fs.ModeCharDevice != 0 {
			return KindCharDevice
		}
		return KindBlockDevice
	case mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	default:
		return KindUnknown
	}
}

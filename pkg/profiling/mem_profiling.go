package profiling

import (
	"runtime"
	"runtime/pprof"

	log "github.com/sirupsen/logrus"
)

var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoMemProfiling returns a func that writes a heap profile to fileName.
// It is meant to be deferred so the profile reflects the whole session.
func DoMemProfiling(fileName string) (write func()) {
	return func() {
		logger := log.WithField("path", fileName)
		f, err := osCreate(fileName)
		if err != nil {
			logger.Errorf("could not create memory profile: %v", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			logger.Errorf("could not write memory profile: %v", err)
		}
	}
}

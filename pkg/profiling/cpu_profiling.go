package profiling

import (
	"os"
	"runtime/pprof"

	log "github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts CPU profiling into fileName and returns a func that
// stops it. The returned func is never nil.
func DoCPUProfiling(fileName string) (stop func()) {
	stop = func() {}
	logger := log.WithField("path", fileName)
	f, err := osCreate(fileName)
	if err != nil {
		logger.Errorf("could not create CPU profile: %v", err)
		return
	}
	if err = pprofStartCPUProfile(f); err != nil {
		logger.Errorf("could not start CPU profile: %v", err)
		_ = f.Close()
		return
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			logger.Errorf("could not close CPU profile: %v", err)
		}
	}
}

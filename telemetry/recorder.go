package telemetry

import (
	"sync"
)

type Recorder interface {
	Record()
}

type multiRecorder struct {
	recorders []Recorder
	mutex     sync.Mutex
}

func (r *multiRecorder) Record() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, recorder := range r.recorders {
		recorder.Record()
	}
}

func (r *multiRecorder) Len() int {
	return len(r.recorders)
}

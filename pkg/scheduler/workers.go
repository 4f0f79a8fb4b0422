package scheduler

import "runtime"

// defaultWorkerCount falls back to the detected hardware parallelism.
func defaultWorkerCount() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	keyPressedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shakecalc",
			Subsystem: "keypad",
			Name:      "key_pressed_total",
			Help:      "Total number of key presses.",
		}, []string{"kind"})

	evaluationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shakecalc",
			Subsystem: "keypad",
			Name:      "evaluation_total",
			Help:      "Total number of expression evaluations.",
		}, []string{"result"})

	shakeClearedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shakecalc",
			Subsystem: "motion",
			Name:      "shake_cleared_total",
			Help:      "Total number of shakes that cleared the display.",
		})

	motionSampleCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shakecalc",
			Subsystem: "motion",
			Name:      "sample_total",
			Help:      "Total number of accelerometer samples observed.",
		})

	persistCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shakecalc",
			Subsystem: "store",
			Name:      "persist_total",
			Help:      "Total number of display commits to the preference store.",
		}, []string{"result"})
)

// IncKeyPressed counts a key press of the given kind.
func IncKeyPressed(kind string) {
	keyPressedCounter.WithLabelValues(kind).Inc()
}

// IncEvaluation counts an evaluation; ok reports whether it succeeded.
func IncEvaluation(ok bool) {
	evaluationCounter.WithLabelValues(result(ok)).Inc()
}

// IncShakeCleared counts a shake-triggered clear.
func IncShakeCleared() {
	shakeClearedCounter.Inc()
}

// IncMotionSample counts an observed sample.
func IncMotionSample() {
	motionSampleCounter.Inc()
}

// IncPersist counts a commit; ok reports whether the write succeeded.
func IncPersist(ok bool) {
	persistCounter.WithLabelValues(result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

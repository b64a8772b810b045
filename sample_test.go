package frp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSampleReadsLatestOnTrigger is S3: WithLatestFrom only emits when the
// sampling stream fires; signal updates between triggers never emit on
// their own, and the combinator always reads the signal's value as of the
// moment the trigger fired.
func TestSampleReadsLatestOnTrigger(t *testing.T) {
	trigger, fire, _ := newTestStream[string]()
	price := NewVar(100)

	sampled := WithLatestFrom(trigger, price.Signal, func(label string, p int) string {
		return label + ":" + strconv.Itoa(p)
	})

	var got []string
	sampled.AddObserver(Observer[string]{OnNext: func(v string) { got = append(got, v) }})

	price.Set(200) // updates signal, no emission on sampled
	assert.Empty(t, got)

	fire("checkout") // now sampled emits, reading price's current value (200)
	assert.Equal(t, []string{"checkout:200"}, got)

	price.Set(300)
	price.Set(400)
	fire("refresh")
	assert.Equal(t, []string{"checkout:200", "refresh:400"}, got)
}

// TestSampleStartsDerivedSignalWithNoOtherObserver is §4.6's "sampled
// signals must be started" requirement: a sampled signal that is itself
// derived (MapSignal over a Var, not a Var directly) and has no other
// observer must still be started by the sample node, otherwise it never
// computes a value and every trigger is silently dropped.
func TestSampleStartsDerivedSignalWithNoOtherObserver(t *testing.T) {
	trigger, fire, _ := newTestStream[int]()
	v := NewVar(5)
	derived := MapSignal[int, int](v.Signal, func(x int) int { return x * 10 })

	// derived has no observer of its own anywhere else in this test.
	sampled := WithLatestFrom(trigger, derived, func(x, y int) int { return x + y })

	var got []int
	sampled.AddObserver(Observer[int]{OnNext: func(v int) { got = append(got, v) }})

	fire(1)
	assert.Equal(t, []int{51}, got)

	v.Set(6)
	fire(2)
	assert.Equal(t, []int{51, 62}, got)
}

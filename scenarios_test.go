package frp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorLatchAndRecovery is S5: a signal's error becomes its current
// value until a later success recovers it; observers without an error
// handler still see the success that eventually recovers it.
func TestErrorLatchAndRecovery(t *testing.T) {
	v := NewVar(1)

	var values []int
	v.AddObserver(Observer[int]{OnNext: func(x int) { values = append(values, x) }})

	v.Fail(errors.New("disconnected"))
	tv, ok := v.Now()
	assert.True(t, ok)
	assert.True(t, tv.IsFailure())

	// a fresh observer joining while failed replays the failure, not a value
	var lateErr error
	v.AddObserver(Observer[int]{
		OnNext:  func(int) {},
		OnError: func(e error) { lateErr = e },
	})
	assert.Error(t, lateErr)

	v.Set(2)
	tv, ok = v.Now()
	assert.True(t, ok)
	assert.Equal(t, 2, tv.Value)
	assert.Equal(t, []int{1, 2}, values)
}

// TestCrossTransactionOrdering is S6: a Set() issued from inside another
// observer's callback does not inject into the in-flight transaction; it
// queues and runs strictly after the current transaction (and anything
// else already queued) fully drains.
func TestCrossTransactionOrdering(t *testing.T) {
	v := NewVar(0)
	w := NewVar(100)

	var order []string
	v.AddObserver(Observer[int]{OnNext: func(x int) {
		order = append(order, "v")
		if x == 1 {
			w.Set(101) // re-entrant: must not run inside this transaction
		}
	}})
	w.AddObserver(Observer[int]{OnNext: func(int) {
		order = append(order, "w")
	}})

	order = nil // drop the two initial replays
	v.Set(1)

	assert.Equal(t, []string{"v", "w"}, order)

	tv, ok := w.Now()
	assert.True(t, ok)
	assert.Equal(t, 101, tv.Value)
}

func TestLifecycleDiscardsStreamStateOnStop(t *testing.T) {
	src, fire, _ := newTestStream[int]()
	doubled := MapStream[int, int](src, func(x int) int { return x * 2 })

	sub := doubled.AddObserver(Observer[int]{OnNext: func(int) {}})
	fire(1)
	sub.Kill()

	assert.False(t, doubled.IsStarted())

	// restarting after a full stop/start cycle doesn't replay anything:
	// streams carry no state across a 1->0->1 observer transition.
	var got []int
	doubled.AddObserver(Observer[int]{OnNext: func(x int) { got = append(got, x) }})
	assert.Empty(t, got)

	fire(5)
	assert.Equal(t, []int{10}, got)
}

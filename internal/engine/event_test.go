package engine

import "testing"

func TestEventWithArgInvokesInOrder(t *testing.T) {
	var e EventWithArg[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(nil)
	e.AddListener(func(v int) { got = append(got, v*10) })

	if e.GetListenerCount() != 2 {
		t.Errorf("Expected nil listener to be ignored, count %d", e.GetListenerCount())
	}

	e.Invoke(3)
	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("Unexpected invocation result %v", got)
	}

	e.RemoveAllListeners()
	e.Invoke(4)
	if len(got) != 2 {
		t.Error("Listeners should be cleared")
	}
}

package datagrid

import "testing"

func TestSelectionGuard_RefCounted(t *testing.T) {
	var calls []bool
	SetSelectionHook(func(suppressed bool) { calls = append(calls, suppressed) })
	t.Cleanup(func() { SetSelectionHook(nil) })

	r1 := AcquireSelectionSuppression()
	r2 := AcquireSelectionSuppression()
	if !SelectionSuppressed() {
		t.Fatal("Expected selection suppressed")
	}

	r1()
	r1() // no effect
	if !SelectionSuppressed() {
		t.Error("Expected selection still suppressed while r2 is held")
	}

	r2()
	if SelectionSuppressed() {
		t.Error("Expected selection restored")
	}

	if len(calls) != 2 || calls[0] != true || calls[1] != false {
		t.Errorf("Expected hook calls [true false], got %v", calls)
	}
}

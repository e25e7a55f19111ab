package ui

import (
	"testing"

	"github.com/automoto/rogueratou/components"
)

func TestModalStateDismissRunsOncePerShow(t *testing.T) {
	var m ModalState
	calls := 0
	m.OnDismiss(func() { calls++ })

	if m.Dismiss() {
		t.Fatal("Dismiss() on a hidden modal reported true")
	}

	m.Show()
	if !m.Visible() {
		t.Fatal("modal not visible after Show()")
	}
	if !m.Dismiss() {
		t.Fatal("Dismiss() on a visible modal reported false")
	}
	if m.Dismiss() {
		t.Error("second Dismiss() reported true")
	}
	if calls != 1 {
		t.Fatalf("callback ran %d times, want 1", calls)
	}

	m.Show()
	m.Dismiss()
	if calls != 2 {
		t.Errorf("callback ran %d times after second cycle, want 2", calls)
	}
}

func TestModalStateHideSkipsCallback(t *testing.T) {
	var m ModalState
	calls := 0
	m.OnDismiss(func() { calls++ })

	m.Show()
	m.Hide()
	if m.Visible() {
		t.Error("modal visible after Hide()")
	}
	if m.Dismiss() || calls != 0 {
		t.Errorf("Dismiss() after Hide() ran the callback %d times", calls)
	}
}

func TestModalOnDismissReplaces(t *testing.T) {
	var m ModalState
	var got string
	m.OnDismiss(func() { got = "first" })
	m.OnDismiss(func() { got = "second" })

	m.Show()
	m.Dismiss()
	if got != "second" {
		t.Errorf("callback = %q, want second", got)
	}
}

func TestDeathModalLifecycle(t *testing.T) {
	session := components.NewSession(1)
	session.UnlockMessage = "You can now move with ARROW KEYS!"

	modal := NewDeathModal(session)
	dismissed := 0
	modal.OnDismiss(func() { dismissed++ })

	modal.Show()
	if !modal.Visible() {
		t.Fatal("death modal not visible after Show()")
	}
	if modal.OverlayAlpha() != 0 {
		t.Errorf("overlay alpha = %v right after Show(), want 0", modal.OverlayAlpha())
	}

	modal.Dismiss()
	if modal.Visible() || dismissed != 1 {
		t.Errorf("after Dismiss(): visible=%v dismissed=%d", modal.Visible(), dismissed)
	}

	modal.Show()
	modal.Destroy()
	if modal.Visible() {
		t.Error("modal visible after Destroy()")
	}
}

func TestStatsLine(t *testing.T) {
	session := &components.SessionData{Deaths: 7, Victories: 2}
	if got, want := StatsLine(session), "Lifetime deaths: 7   Victories: 2"; got != want {
		t.Errorf("StatsLine() = %q, want %q", got, want)
	}
}

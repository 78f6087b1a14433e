package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zireael-ui/zireael/focus"
)

func TestFallsBackToFirstFocusableWhenNothingActive(t *testing.T) {
	s := focus.New()
	s.ApplyPendingFocusChange([]string{"a", "b"})
	active, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, "a", active)
}

func TestPendingRequestAppliedWhenPresentInCommit(t *testing.T) {
	s := focus.New()
	s.ApplyPendingFocusChange([]string{"a", "b"})
	s.RequestFocus("b")
	s.ApplyPendingFocusChange([]string{"a", "b"})
	active, _ := s.Active()
	assert.Equal(t, "b", active)
}

func TestPendingRequestDroppedWhenIDMissingFallsBackToFirst(t *testing.T) {
	s := focus.New()
	s.RequestFocus("missing")
	s.ApplyPendingFocusChange([]string{"a", "b"})
	active, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, "a", active)
}

func TestLaterPendingRequestSupersedesEarlier(t *testing.T) {
	s := focus.New()
	s.RequestFocus("a")
	s.RequestFocus("b")
	s.ApplyPendingFocusChange([]string{"a", "b"})
	active, _ := s.Active()
	assert.Equal(t, "b", active)
}

func TestActiveFallsBackWhenItDisappears(t *testing.T) {
	s := focus.New()
	s.SetActive("a")
	s.ApplyPendingFocusChange([]string{"b", "c"})
	active, _ := s.Active()
	assert.Equal(t, "b", active)
}

func TestNoFocusableLeavesNothingActive(t *testing.T) {
	s := focus.New()
	s.ApplyPendingFocusChange(nil)
	_, ok := s.Active()
	assert.False(t, ok)
}

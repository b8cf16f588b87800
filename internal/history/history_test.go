package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddNewestFirst(t *testing.T) {
	s := NewStore()
	s.Add("ann")
	s.Add("bo")
	s.Add("zoe")

	assert.Equal(t, []string{"zoe", "bo", "ann"}, s.List())
}

func TestAddTrimsAndIgnoresBlank(t *testing.T) {
	s := NewStore()
	s.Add("  ann  ")
	s.Add("")
	s.Add("   ")

	assert.Equal(t, []string{"ann"}, s.List())
}

func TestAddRepeatedMovesToFront(t *testing.T) {
	s := NewStore()
	s.Add("ann")
	s.Add("bo")
	s.Add("ann")

	assert.Equal(t, []string{"ann", "bo"}, s.List())
}

func TestAddCapsAtTen(t *testing.T) {
	s := NewStore()
	for i := 0; i < 12; i++ {
		s.Add(fmt.Sprintf("query-%d", i))
	}

	got := s.List()
	assert.Len(t, got, 10)
	assert.Equal(t, "query-11", got[0])
	assert.Equal(t, "query-2", got[9])
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add("ann")
	s.Add("bo")
	s.Remove("ann")

	assert.Equal(t, []string{"bo"}, s.List())

	s.Remove("missing")
	assert.Equal(t, []string{"bo"}, s.List())
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add("ann")
	s.Clear()

	assert.Empty(t, s.List())
}

package order

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureOpener struct {
	mu   sync.Mutex
	urls []string
}

func (c *captureOpener) Open(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls = append(c.urls, url)
}

func (c *captureOpener) opened() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.urls...)
}

func TestSubmitter_Submit_HandsOffToOpener(t *testing.T) {
	opener := &captureOpener{}
	s := NewSubmitter(opener, 50*time.Millisecond)

	ok := s.Submit("https://wa.me/123?text=order")

	require.True(t, ok)
	assert.Equal(t, []string{"https://wa.me/123?text=order"}, opener.opened())
	assert.True(t, s.Submitting())
}

func TestSubmitter_Submit_RefusesDuplicateWhileSubmitting(t *testing.T) {
	opener := &captureOpener{}
	s := NewSubmitter(opener, time.Minute)

	require.True(t, s.Submit("first"))
	assert.False(t, s.Submit("second"))

	// only the first hand-off reached the opener
	assert.Equal(t, []string{"first"}, opener.opened())
}

func TestSubmitter_AutoRevertsToIdle(t *testing.T) {
	opener := &captureOpener{}
	s := NewSubmitter(opener, 10*time.Millisecond)

	require.True(t, s.Submit("first"))

	assert.Eventually(t, func() bool { return !s.Submitting() },
		time.Second, 5*time.Millisecond)

	// idle again, so a new submission goes through
	assert.True(t, s.Submit("second"))
	assert.Equal(t, []string{"first", "second"}, opener.opened())
}

func TestSubmitter_NilOpenerStillTracksState(t *testing.T) {
	s := NewSubmitter(nil, time.Minute)

	assert.True(t, s.Submit("anywhere"))
	assert.True(t, s.Submitting())
}

func TestNewSubmitter_DefaultRevertDelay(t *testing.T) {
	s := NewSubmitter(nil, 0)
	assert.Equal(t, DefaultRevertDelay, s.revert)
}

func TestOpenerFunc(t *testing.T) {
	var got string
	OpenerFunc(func(url string) { got = url }).Open("somewhere")
	assert.Equal(t, "somewhere", got)
}

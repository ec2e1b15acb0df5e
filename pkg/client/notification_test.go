package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotifier_AutoClear(t *testing.T) {
	n := NewNotifier(50 * time.Millisecond)

	n.Notify("note 'A' was already removed from server")
	assert.Equal(t, "note 'A' was already removed from server", n.Message())

	// 到期后自动清除
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, "", n.Message())
}

func TestNotifier_LastWriteWins(t *testing.T) {
	n := NewNotifier(80 * time.Millisecond)

	n.Notify("first")
	time.Sleep(50 * time.Millisecond)
	n.Notify("second")

	// 第一条的计时器到期后不能清掉第二条
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "second", n.Message())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, "", n.Message())
}

func TestNotifier_Clear(t *testing.T) {
	n := NewNotifier(time.Hour)

	n.Notify("pending")
	n.Clear()
	assert.Equal(t, "", n.Message())
}

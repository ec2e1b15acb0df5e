// Package safe_close coordinates graceful shutdown of attached
// components: one close signal fans out to every attached goroutine and
// WaitClosed blocks until all of them report done.
// Package safe_close 协调组件的优雅关闭：一次关闭信号广播给所有
// 已挂载的协程，WaitClosed 阻塞直到全部完成。
package safe_close

import (
	"sync"
)

type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts f in its own goroutine. f must call done() when it has
// finished shutting down, and must return soon after closeSignal fires.
// Attach 在独立协程中启动 f。f 关闭完成后必须调用 done()，
// 并且在 closeSignal 触发后尽快返回。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() {
		s.wg.Done()
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal broadcasts the close signal once. The first non-nil
// err wins and is returned by WaitClosed.
// SendCloseSignal 广播一次关闭信号，首个非 nil 错误由 WaitClosed 返回。
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until every attached component has called done.
// WaitClosed 阻塞直到所有已挂载组件调用 done。
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

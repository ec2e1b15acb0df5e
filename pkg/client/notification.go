package client

import (
	"sync"
	"time"
)

// DefaultNotificationTTL 通知展示时长
const DefaultNotificationTTL = 5 * time.Second

// Notifier 持有一条短暂的用户可见通知
// 新通知覆盖旧通知，并重置清除计时
type Notifier struct {
	mu      sync.Mutex
	message string
	ttl     time.Duration
	gen     uint64
	timer   *time.Timer
}

// NewNotifier 创建 Notifier，ttl 为零时使用默认时长
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl}
}

// Notify 设置通知内容，到期自动清除
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.message = message
	n.gen++
	gen := n.gen

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// 期间有新通知时不清除
		if n.gen == gen {
			n.message = ""
		}
	})
}

// Message 返回当前通知内容，无通知时为空串
func (n *Notifier) Message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message
}

// Clear 立即清除通知
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = ""
	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

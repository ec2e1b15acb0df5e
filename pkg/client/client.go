// Package client 提供笔记服务的同步客户端
// 维护一份本地笔记快照，并与服务端保持一致
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// State 客户端数据加载状态
type State int

const (
	// StateIdle 尚未加载
	StateIdle State = iota
	// StateLoading 首次加载中
	StateLoading
	// StateLoaded 已加载，本地快照可用
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Note 服务端笔记视图
type Note struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Important bool   `json:"important"`
	User      string `json:"user"`
}

// Session 登录成功后的会话信息
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// APIError 服务端返回的业务错误
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound 是否 404
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ErrNoteRemoved 操作的笔记已在服务端被删除
var ErrNoteRemoved = errors.New("note was already removed from server")

// NoteClient 笔记同步客户端
// 并发安全，本地快照只在服务端确认后更新
type NoteClient struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	state State
	notes []Note
	token string

	notifier *Notifier
	sf       singleflight.Group
}

// Option 客户端可选配置
type Option func(*NoteClient)

// WithHTTPClient 指定底层 HTTP 客户端
func WithHTTPClient(h *http.Client) Option {
	return func(c *NoteClient) {
		c.httpc = h
	}
}

// WithNotificationTTL 指定通知展示时长
func WithNotificationTTL(ttl time.Duration) Option {
	return func(c *NoteClient) {
		c.notifier = NewNotifier(ttl)
	}
}

// NewNoteClient 创建客户端，baseURL 形如 http://localhost:3001
func NewNoteClient(baseURL string, opts ...Option) *NoteClient {
	c := &NoteClient{
		baseURL:  baseURL,
		httpc:    &http.Client{Timeout: 30 * time.Second},
		state:    StateIdle,
		notifier: NewNotifier(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State 返回当前加载状态
func (c *NoteClient) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Notes 返回本地快照的副本
func (c *NoteClient) Notes() []Note {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Notification 返回当前通知内容，无通知时为空串
func (c *NoteClient) Notification() string {
	return c.notifier.Message()
}

// SetToken 直接设置认证令牌
func (c *NoteClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Login 登录并保存令牌
func (c *NoteClient) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{"username": username, "password": password}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &session); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = session.Token
	c.mu.Unlock()
	return &session, nil
}

// Load 从服务端拉取全部笔记并替换本地快照
// 并发调用合并为一次请求
func (c *NoteClient) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateIdle {
		c.state = StateLoading
	}
	c.mu.Unlock()

	_, err, _ := c.sf.Do("load", func() (any, error) {
		var notes []Note
		if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
			c.mu.Lock()
			if c.state == StateLoading {
				c.state = StateIdle
			}
			c.mu.Unlock()
			return nil, err
		}

		c.mu.Lock()
		c.notes = notes
		c.state = StateLoaded
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

// Create 在服务端创建笔记，确认成功后追加到本地快照
func (c *NoteClient) Create(ctx context.Context, content string, important bool) (*Note, error) {
	body := map[string]any{"content": content, "important": important}
	var created Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", body, &created); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.notes = append(c.notes, created)
	c.mu.Unlock()
	return &created, nil
}

// ToggleImportance 反转笔记的重要性标记
// 笔记已在服务端被删除时，从本地快照移除并发出通知
func (c *NoteClient) ToggleImportance(ctx context.Context, id string) (*Note, error) {
	c.mu.RLock()
	var target *Note
	for i := range c.notes {
		if c.notes[i].ID == id {
			n := c.notes[i]
			target = &n
			break
		}
	}
	c.mu.RUnlock()

	if target == nil {
		return nil, errors.Errorf("note %s not found in local state", id)
	}

	body := map[string]any{"content": target.Content, "important": !target.Important}
	var updated Note
	err := c.do(ctx, http.MethodPut, "/api/notes/"+id, body, &updated)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			c.removeLocal(id)
			c.notifier.Notify(fmt.Sprintf("note '%s' was already removed from server", target.Content))
			return nil, ErrNoteRemoved
		}
		return nil, err
	}

	c.mu.Lock()
	for i := range c.notes {
		if c.notes[i].ID == id {
			c.notes[i] = updated
			break
		}
	}
	c.mu.Unlock()
	return &updated, nil
}

// Delete 删除笔记并从本地快照移除
func (c *NoteClient) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/notes/"+id, nil, nil); err != nil {
		return err
	}
	c.removeLocal(id)
	return nil
}

func (c *NoteClient) removeLocal(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.notes[:0]
	for _, n := range c.notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	c.notes = out
}

// do 执行一次请求，2xx 之外的响应解析为 APIError
func (c *NoteClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if len(data) > 0 && json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "decode response body")
		}
	}
	return nil
}

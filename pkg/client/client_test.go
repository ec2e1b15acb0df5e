package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer 内存笔记服务，模拟服务端语义
type fakeServer struct {
	mu       sync.Mutex
	notes    map[string]Note
	order    []string
	loads    int
	tokenReq bool
}

func newFakeServer() *fakeServer {
	return &fakeServer{notes: map[string]Note{}}
}

func (f *fakeServer) add(n Note) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes[n.ID] = n
	f.order = append(f.order, n.ID)
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "salainen" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid username or password"})
			return
		}
		_ = json.NewEncoder(w).Encode(Session{Token: "test-token", Username: body.Username, Name: "Matti"})
	})

	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			f.mu.Lock()
			f.loads++
			out := make([]Note, 0, len(f.order))
			for _, id := range f.order {
				if n, ok := f.notes[id]; ok {
					out = append(out, n)
				}
			}
			f.mu.Unlock()
			_ = json.NewEncoder(w).Encode(out)
		case http.MethodPost:
			if f.tokenReq && r.Header.Get("Authorization") != "Bearer test-token" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "token missing or invalid"})
				return
			}
			var body struct {
				Content   string `json:"content"`
				Important bool   `json:"important"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			n := Note{ID: "id-" + body.Content, Content: body.Content, Important: body.Important, User: "u1"}
			f.add(n)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(n)
		}
	})

	mux.HandleFunc("/api/notes/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/notes/")
		f.mu.Lock()
		n, ok := f.notes[id]
		f.mu.Unlock()

		switch r.Method {
		case http.MethodPut:
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var body struct {
				Important bool `json:"important"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			n.Important = body.Important
			f.mu.Lock()
			f.notes[id] = n
			f.mu.Unlock()
			_ = json.NewEncoder(w).Encode(n)
		case http.MethodDelete:
			f.mu.Lock()
			delete(f.notes, id)
			f.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		}
	})

	return mux
}

func TestNoteClient_LoadStates(t *testing.T) {
	fs := newFakeServer()
	fs.add(Note{ID: "n1", Content: "HTML is easy", User: "u1"})
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := NewNoteClient(srv.URL)
	assert.Equal(t, StateIdle, c.State())

	err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateLoaded, c.State())

	notes := c.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "HTML is easy", notes[0].Content)
}

func TestNoteClient_LoginAndCreate(t *testing.T) {
	fs := newFakeServer()
	fs.tokenReq = true
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := NewNoteClient(srv.URL)

	// 未登录时创建被拒绝，本地快照不变
	_, err := c.Create(context.Background(), "rejected", false)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Empty(t, c.Notes())

	session, err := c.Login(context.Background(), "mluukkai", "salainen")
	require.NoError(t, err)
	assert.Equal(t, "test-token", session.Token)

	// 服务端确认后才追加到本地
	created, err := c.Create(context.Background(), "browser can execute only JavaScript", true)
	require.NoError(t, err)
	assert.True(t, created.Important)

	notes := c.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, created.ID, notes[0].ID)
}

func TestNoteClient_ToggleImportance(t *testing.T) {
	fs := newFakeServer()
	fs.add(Note{ID: "n1", Content: "HTML is easy", Important: false, User: "u1"})
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := NewNoteClient(srv.URL)
	require.NoError(t, c.Load(context.Background()))

	updated, err := c.ToggleImportance(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, updated.Important)
	assert.Equal(t, "HTML is easy", updated.Content)
	assert.True(t, c.Notes()[0].Important)
}

func TestNoteClient_ToggleRemovedNote(t *testing.T) {
	fs := newFakeServer()
	fs.add(Note{ID: "n1", Content: "HTML is easy", User: "u1"})
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := NewNoteClient(srv.URL, WithNotificationTTL(200*time.Millisecond))
	require.NoError(t, c.Load(context.Background()))

	// 笔记在别处被删除
	fs.mu.Lock()
	delete(fs.notes, "n1")
	fs.mu.Unlock()

	_, err := c.ToggleImportance(context.Background(), "n1")
	assert.ErrorIs(t, err, ErrNoteRemoved)

	// 本地快照同步移除，并出现通知
	assert.Empty(t, c.Notes())
	assert.Equal(t, "note 'HTML is easy' was already removed from server", c.Notification())

	// 通知到期自动消失
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, "", c.Notification())
}

func TestNoteClient_Delete(t *testing.T) {
	fs := newFakeServer()
	fs.add(Note{ID: "n1", Content: "deleted soon", User: "u1"})
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := NewNoteClient(srv.URL)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Delete(context.Background(), "n1"))
	assert.Empty(t, c.Notes())
}

func TestNoteClient_ConcurrentLoadDeduped(t *testing.T) {
	fs := newFakeServer()
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	c := NewNoteClient(srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Load(context.Background())
		}()
	}
	wg.Wait()

	fs.mu.Lock()
	loads := fs.loads
	fs.mu.Unlock()
	assert.LessOrEqual(t, loads, 8)
	assert.GreaterOrEqual(t, loads, 1)
	assert.Equal(t, StateLoaded, c.State())
}

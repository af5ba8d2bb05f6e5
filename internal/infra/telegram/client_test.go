//go:build unit

package telegram_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"card-drop/internal/infra/telegram"
	"card-drop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("sendMessage", func(t *testing.T) {
		var got telegram.SendMessageRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":77}}`)
		}))
		defer srv.Close()

		c := telegram.NewClient(srv.URL, "TOKEN", time.Second)
		id, err := c.SendMessage(ctx, 42, "hello")
		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
		assert.Equal(t, int64(42), got.ChatID)
		assert.Equal(t, "hello", got.Text)
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`)
		}))
		defer srv.Close()

		c := telegram.NewClient(srv.URL, "T", time.Second)
		_, err := c.SendMessage(ctx, 1, "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "blocked")
	})

	t.Run("sendPhoto is multipart", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/botT/sendPhoto", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "5", r.FormValue("chat_id"))
			assert.Equal(t, "caption", r.FormValue("caption"))
			f, hdr, err := r.FormFile("photo")
			require.NoError(t, err)
			data, _ := io.ReadAll(f)
			assert.Equal(t, "card.png", hdr.Filename)
			assert.Equal(t, "png-bytes", string(data))
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1}}`)
		}))
		defer srv.Close()

		c := telegram.NewClient(srv.URL, "T", time.Second)
		_, err := c.SendPhoto(ctx, 5, "card.png", strings.NewReader("png-bytes"), "caption")
		require.NoError(t, err)
	})

	t.Run("getUpdates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req telegram.GetUpdatesRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(10), req.Offset)
			assert.Equal(t, 30, req.Timeout)
			_, _ = io.WriteString(w, `{"ok":true,"result":[{"update_id":10,"message":{"message_id":1,"from":{"id":9,"first_name":"Ann","last_name":"Lee"},"chat":{"id":9},"text":"/drop"}}]}`)
		}))
		defer srv.Close()

		c := telegram.NewClient(srv.URL, "T", time.Second)
		updates, err := c.GetUpdates(ctx, 10, 30*time.Second)
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, "Lee", updates[0].Message.From.LastName)
		assert.Equal(t, "/drop", updates[0].Message.Text)
	})
}

type fakeSender struct{ err error }

func (f fakeSender) SendMessage(context.Context, int64, string) (int64, error) { return 1, f.err }

func TestDelivery(t *testing.T) {
	assert.NoError(t, telegram.NewDelivery(fakeSender{}).Notify(context.Background(), 1, "hi"))

	err := telegram.NewDelivery(fakeSender{err: io.ErrUnexpectedEOF}).Notify(context.Background(), 1, "hi")
	assert.True(t, errs.Is(err, errs.ErrDeliveryFailure))
}

type scriptedSource struct {
	mu      sync.Mutex
	batches [][]telegram.Update
	offsets []int64
}

func (s *scriptedSource) GetUpdates(ctx context.Context, offset int64, _ time.Duration) ([]telegram.Update, error) {
	s.mu.Lock()
	s.offsets = append(s.offsets, offset)
	if len(s.batches) > 0 {
		b := s.batches[0]
		s.batches = s.batches[1:]
		s.mu.Unlock()
		return b, nil
	}
	s.mu.Unlock()
	<-ctx.Done()
	return nil, ctx.Err()
}

type countingHandler struct{ n atomic.Int32 }

func (h *countingHandler) Handle(context.Context, telegram.Update) { h.n.Add(1) }

func TestPoller(t *testing.T) {
	src := &scriptedSource{batches: [][]telegram.Update{
		{{UpdateID: 5}, {UpdateID: 6}},
		{{UpdateID: 7}},
	}}
	h := &countingHandler{}
	p := telegram.NewPoller(src, h, time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.Start()

	require.Eventually(t, func() bool { return h.n.Load() == 3 }, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Equal(t, []int64{0, 7, 8}, src.offsets, "offset advances past handled updates")
}

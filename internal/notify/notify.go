package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// 画面に出したエラー通知
type Message struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// LogNotifier は通知をログに残すだけ
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log.Named("notify")}
}

func (n *LogNotifier) Error(message string) {
	n.log.Warn("user notified", zap.String("message", message))
}

// Buffer は直近の通知を新しい順で size 件まで保持する
type Buffer struct {
	mu    sync.Mutex
	size  int
	items []Message
	now   func() time.Time
}

func NewBuffer(size int) *Buffer {
	if size < 1 {
		size = 1
	}
	return &Buffer{size: size, now: time.Now}
}

func (b *Buffer) Error(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.items = append(b.items, Message{Text: message, At: b.now()})
	if over := len(b.items) - b.size; over > 0 {
		b.items = append([]Message(nil), b.items[over:]...)
	}
}

// 新しい順
func (b *Buffer) Recent() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Message, 0, len(b.items))
	for i := len(b.items) - 1; i >= 0; i-- {
		out = append(out, b.items[i])
	}
	return out
}

// 複数の通知先に流す
type Multi []interface{ Error(string) }

func (m Multi) Error(message string) {
	for _, n := range m {
		n.Error(message)
	}
}

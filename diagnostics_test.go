package bignum

import (
	"context"
	"sync"
	"testing"

	"github.com/agbru/bignum/internal/logging"
)

type recordingLogger struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingLogger) Debug(msg string, fields ...logging.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, msg)
}

func (r *recordingLogger) Error(msg string, fields ...logging.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, msg)
}

func TestSetLoggerReceivesDispatchDecisions(t *testing.T) {
	rl := &recordingLogger{}
	SetLogger(rl)
	defer SetLogger(nil)

	From(int64(3)).Mul(From(int64(4)))
	_, _, _ = From(int64(9)).DivMod(From(int64(2)))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.calls) < 2 {
		t.Fatalf("expected at least 2 log calls, got %d: %v", len(rl.calls), rl.calls)
	}
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(nil)
	if _, ok := currentLogger().(interface {
		Debug(string, ...logging.Field)
	}); !ok {
		t.Fatal("currentLogger() does not implement Logger after SetLogger(nil)")
	}
	// Must not panic with the default logger installed.
	From(int64(1)).Mul(From(int64(1)))
}

func TestMulContextAndDivModContextMatchPlainResults(t *testing.T) {
	a := From(int64(123))
	b := From(int64(45))

	if got := a.MulContext(context.Background(), b); !got.Equal(a.Mul(b)) {
		t.Errorf("MulContext = %v, want %v", got, a.Mul(b))
	}

	q, r, err := a.DivModContext(context.Background(), b)
	if err != nil {
		t.Fatal(err)
	}
	wantQ, wantR, _ := a.DivMod(b)
	if !q.Equal(wantQ) || !r.Equal(wantR) {
		t.Errorf("DivModContext = (%v,%v), want (%v,%v)", q, r, wantQ, wantR)
	}
}

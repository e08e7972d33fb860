package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestNopDiscardsEverything(t *testing.T) {
	l := Nop()
	l.Debug("anything", String("k", "v"))
	l.Error("anything", Int("n", 1))
	// Nop must never panic regardless of fields; nothing else to assert.
}

func TestFieldConstructors(t *testing.T) {
	if f := String("k", "v"); f.Key != "k" || f.Value != "v" {
		t.Errorf("String() = %+v", f)
	}
	if f := Int("k", 5); f.Value != 5 {
		t.Errorf("Int() = %+v", f)
	}
	if f := Uint64("k", 5); f.Value != uint64(5) {
		t.Errorf("Uint64() = %+v", f)
	}
	if f := Float64("k", 1.5); f.Value != 1.5 {
		t.Errorf("Float64() = %+v", f)
	}
	if f := Err(nil); f.Key != "error" || f.Value != nil {
		t.Errorf("Err(nil) = %+v", f)
	}
	wantErr := errors.New("boom")
	if f := Err(wantErr); f.Value != wantErr {
		t.Errorf("Err(err) = %+v", f)
	}
}

func TestZerologAdapterWritesRecords(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	adapter.Debug("dispatch", String("algorithm", "fft"), Int("limbs_a", 4))

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("dispatch")) {
		t.Fatalf("log output missing message: %s", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("fft")) {
		t.Fatalf("log output missing field value: %s", out)
	}
}

func TestZerologAdapterErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	adapter.Error("failure", Err(errors.New("bad")))
	if !bytes.Contains(buf.Bytes(), []byte("failure")) {
		t.Fatalf("log output missing message: %s", buf.String())
	}
}

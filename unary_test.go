package bignum

import "testing"

func TestNegAndPos(t *testing.T) {
	v := From(int64(42))
	if got := v.Neg(); !got.Equal(From(int64(-42))) {
		t.Errorf("Neg(42) = %v, want -42", got)
	}
	if got := Zero().Neg(); !got.IsZero() {
		t.Error("Neg(0) should still be zero")
	}
	if got := v.Pos(); !got.Equal(v) {
		t.Errorf("Pos(x) = %v, want %v", got, v)
	}
}

func TestLogicalNot(t *testing.T) {
	if !Zero().LogicalNot() {
		t.Error("!0 should be true")
	}
	if From(int64(5)).LogicalNot() {
		t.Error("!5 should be false")
	}
	if From(int64(-5)).LogicalNot() {
		t.Error("!-5 should be false")
	}
}

func TestIncDec(t *testing.T) {
	v := From(int64(5))
	if got := v.PreInc(); !got.Equal(From(int64(6))) {
		t.Errorf("PreInc = %v, want 6", got)
	}
	if !v.Equal(From(int64(6))) {
		t.Errorf("PreInc did not mutate receiver, got %v", v)
	}

	v = From(int64(5))
	prev := v.PostInc()
	if !prev.Equal(From(int64(5))) {
		t.Errorf("PostInc return = %v, want 5", prev)
	}
	if !v.Equal(From(int64(6))) {
		t.Errorf("PostInc did not mutate receiver, got %v", v)
	}

	v = From(int64(5))
	if got := v.PreDec(); !got.Equal(From(int64(4))) {
		t.Errorf("PreDec = %v, want 4", got)
	}

	v = From(int64(5))
	prev = v.PostDec()
	if !prev.Equal(From(int64(5))) {
		t.Errorf("PostDec return = %v, want 5", prev)
	}
	if !v.Equal(From(int64(4))) {
		t.Errorf("PostDec did not mutate receiver, got %v", v)
	}
}

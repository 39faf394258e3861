package minase

import (
	"errors"
	"testing"
)

func TestWrapAndIsKind(t *testing.T) {
	base := errors.New("boom")
	err := Wrap(KindTransient, "op", base)
	if !IsKind(err, KindTransient) {
		t.Error("expected IsKind to match KindTransient")
	}
	if IsKind(err, KindDecode) {
		t.Error("did not expect IsKind to match KindDecode")
	}
	if !errors.Is(err, err) {
		t.Error("expected self-equality")
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if Wrap(KindTransient, "op", nil) != nil {
		t.Error("expected Wrap(nil) to return nil")
	}
}

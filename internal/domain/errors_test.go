package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	err := NewError(KindNotFound, "Item not found")
	if got := KindOf(err); got != KindNotFound {
		t.Fatalf("KindOf = %v, want KindNotFound", got)
	}

	// Классификация сохраняется через обертывание
	wrapped := fmt.Errorf("handler: %w", err)
	if got := KindOf(wrapped); got != KindNotFound {
		t.Fatalf("KindOf(wrapped) = %v, want KindNotFound", got)
	}

	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Fatalf("KindOf(plain) = %v, want KindUnknown", got)
	}
}

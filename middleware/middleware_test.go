package middleware_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/xraph/overload/middleware"
	"github.com/xraph/overload/signature"
)

func newTestCall() *signature.Call {
	return &signature.Call{
		Group: "concat",
		Args:  []any{"a", 1},
		Named: map[string]any{"sep": "-"},
	}
}

func TestChain_ExecutionOrder(t *testing.T) {
	var order []string

	mw1 := func(ctx context.Context, _ *signature.Call, next middleware.Handler) (any, error) {
		order = append(order, "mw1-before")
		v, err := next(ctx)
		order = append(order, "mw1-after")
		return v, err
	}

	mw2 := func(ctx context.Context, _ *signature.Call, next middleware.Handler) (any, error) {
		order = append(order, "mw2-before")
		v, err := next(ctx)
		order = append(order, "mw2-after")
		return v, err
	}

	chain := middleware.Chain(mw1, mw2)
	handler := func(_ context.Context) (any, error) {
		order = append(order, "handler")
		return "done", nil
	}

	v, err := chain(context.Background(), newTestCall(), handler)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "done" {
		t.Errorf("value = %v, want %q", v, "done")
	}

	expected := []string{"mw1-before", "mw2-before", "handler", "mw2-after", "mw1-after"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, want := range expected {
		if order[i] != want {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	chain := middleware.Chain()
	called := false
	handler := func(_ context.Context) (any, error) {
		called = true
		return 7, nil
	}

	v, err := chain(context.Background(), newTestCall(), handler)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("handler not called with empty chain")
	}
	if v != 7 {
		t.Errorf("value = %v, want 7", v)
	}
}

func TestChain_PropagatesError(t *testing.T) {
	mw := func(ctx context.Context, _ *signature.Call, next middleware.Handler) (any, error) {
		return next(ctx)
	}
	chain := middleware.Chain(mw)
	want := errors.New("dispatch error")

	_, err := chain(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		return nil, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestRecover_CatchesPanic(t *testing.T) {
	logger := slog.Default()
	mw := middleware.Recover(logger)
	call := &signature.Call{Group: "panicky"}

	v, err := mw(context.Background(), call, func(_ context.Context) (any, error) {
		panic("test panic")
	})
	if err == nil {
		t.Fatal("expected error from panic recovery")
	}
	if got := err.Error(); got != "panic in group panicky: test panic" {
		t.Errorf("unexpected error message: %q", got)
	}
	if v != nil {
		t.Errorf("expected nil value after recovery, got %v", v)
	}
}

func TestRecover_PassesThrough(t *testing.T) {
	logger := slog.Default()
	mw := middleware.Recover(logger)

	called := false
	v, err := mw(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		called = true
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("handler not called")
	}
	if v != "ok" {
		t.Errorf("value = %v, want %q", v, "ok")
	}
}

func TestLogging_PassesThroughResult(t *testing.T) {
	logger := slog.Default()
	mw := middleware.Logging(logger)

	v, err := mw(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("value = %v, want 42", v)
	}

	want := errors.New("no match")
	_, err = mw(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		return nil, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

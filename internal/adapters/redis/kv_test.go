package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "hotel_portal/internal/adapters/redis"
)

func TestKV_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	kv := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "session:token"); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "session:token", "tok-123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := kv.Get(ctx, "session:token")
	if err != nil || !ok || v != "tok-123" {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := kv.Del(ctx, "session:token"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "session:token"); ok {
		t.Fatalf("expected miss after delete")
	}
}

// Laptoplens - Laptop Catalog Advisory and AI Shopping Assistant
// Copyright 2026 Ngoc V. (ngocvb)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ngocvb/laptoplens

package cache

import (
	"testing"
	"time"
)

func TestGetSet(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) = hit, want miss")
	}

	c.Set("k", 42)
	v, ok := c.Get("k")
	if !ok {
		t.Fatal("Get(k) = miss after Set")
	}
	if v.(int) != 42 {
		t.Errorf("Get(k) = %v, want 42", v)
	}
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)

	c.SetWithTTL("short", "v", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired entry still served")
	}

	stats := c.GetStats()
	if stats.Evictions == 0 {
		t.Error("expired read did not count as eviction")
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry still served")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("cleared entry still served")
	}
	if c.GetStats().TotalKeys != 0 {
		t.Error("TotalKeys not reset by Clear")
	}
}

func TestHitRate(t *testing.T) {
	c := New(time.Minute)

	c.Set("k", 1)
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	want := 100.0 * 2.0 / 3.0
	if got := c.HitRate(); got < want-0.01 || got > want+0.01 {
		t.Errorf("HitRate() = %.2f, want %.2f", got, want)
	}
}

func TestGenerateKey(t *testing.T) {
	type req struct {
		Need     string
		Priority string
	}

	k1 := GenerateKey("recommend", req{Need: "gaming", Priority: "balanced"})
	k2 := GenerateKey("recommend", req{Need: "gaming", Priority: "balanced"})
	k3 := GenerateKey("recommend", req{Need: "office", Priority: "balanced"})

	if k1 != k2 {
		t.Error("identical params produced different keys")
	}
	if k1 == k3 {
		t.Error("different params produced the same key")
	}
}

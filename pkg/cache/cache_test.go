package cache

import (
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	c := New[string]()
	c.Set("key1", "value1", 1*time.Second)
	val, ok := c.Get("key1")
	if !ok || val != "value1" {
		t.Fatalf("expected value1, got %v, exists=%v", val, ok)
	}
}

func TestExpiration(t *testing.T) {
	c := New[string]()
	c.Set("key1", "value1", 100*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	_, ok := c.Get("key1")
	if ok {
		t.Fatalf("expected expired key to return false")
	}
}

func TestDelete(t *testing.T) {
	c := New[string]()
	c.Set("key1", "value1", 1*time.Second)
	c.Delete("key1")
	_, ok := c.Get("key1")
	if ok {
		t.Fatalf("expected deleted key to return false")
	}
}

func TestGetZeroValueOnMiss(t *testing.T) {
	c := New[[]byte]()
	val, ok := c.Get("missing")
	if ok || val != nil {
		t.Fatalf("expected nil on miss, got %v, exists=%v", val, ok)
	}
}

func TestInvalidate(t *testing.T) {
	c := New[string]()
	c.Set("constellation:aries", "a", 1*time.Second)
	c.Set("constellation:leo", "l", 1*time.Second)
	c.Set("catalog:all", "c", 1*time.Second)
	c.Invalidate("constellation:")
	_, ok1 := c.Get("constellation:aries")
	_, ok2 := c.Get("constellation:leo")
	_, ok3 := c.Get("catalog:all")
	if ok1 || ok2 {
		t.Fatalf("expected constellation keys to be invalidated")
	}
	if !ok3 {
		t.Fatalf("expected catalog:all to still exist")
	}
}

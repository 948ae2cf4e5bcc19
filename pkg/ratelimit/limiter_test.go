package ratelimit

import (
	"testing"
	"time"
)

func TestTokenBucket(t *testing.T) {
	tb := NewTokenBucket(5, time.Second)

	// Test initial capacity
	for i := 0; i < 5; i++ {
		if !tb.Allow() {
			t.Errorf("Expected token %d to be available", i+1)
		}
	}

	// Test exhaustion
	if tb.Allow() {
		t.Error("Expected no more tokens to be available")
	}

	// Test refill after waiting
	time.Sleep(time.Second + 100*time.Millisecond)
	if !tb.Allow() {
		t.Error("Expected tokens to be refilled after waiting")
	}

	// Test reset
	tb.tokens = 0
	tb.Reset()
	if tb.tokens != tb.capacity {
		t.Error("Expected tokens to be reset to capacity")
	}
}

func TestTokenBucketReady(t *testing.T) {
	tb := NewTokenBucket(1, time.Second)

	// Ready does not consume the token
	if !tb.Ready() {
		t.Error("Expected bucket to be ready")
	}
	if !tb.Ready() {
		t.Error("Expected repeated Ready calls to leave the token in place")
	}

	if !tb.Allow() {
		t.Error("Expected the token to still be available after Ready")
	}
	if tb.Ready() {
		t.Error("Expected bucket to be empty after Allow")
	}

	// Ready observes refills
	time.Sleep(time.Second + 100*time.Millisecond)
	if !tb.Ready() {
		t.Error("Expected Ready to see the refilled token")
	}
}

func TestSlidingWindow(t *testing.T) {
	sw := NewSlidingWindow(3, time.Second)

	// Test initial requests
	for i := 0; i < 3; i++ {
		if !sw.Allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// Test limit reached
	if sw.Allow() {
		t.Error("Expected request to be denied when limit is reached")
	}

	// Test window sliding
	time.Sleep(time.Second + 100*time.Millisecond)
	if !sw.Allow() {
		t.Error("Expected request to be allowed after window slides")
	}

	// Test reset
	sw.Reset()
	if len(sw.requests) != 0 {
		t.Error("Expected requests to be cleared after reset")
	}
}

func TestSlidingWindowReady(t *testing.T) {
	sw := NewSlidingWindow(2, time.Second)

	if !sw.Ready() {
		t.Error("Expected fresh window to be ready")
	}
	if len(sw.requests) != 0 {
		t.Error("Expected Ready not to record a request")
	}

	sw.Allow()
	sw.Allow()
	if sw.Ready() {
		t.Error("Expected full window not to be ready")
	}

	time.Sleep(time.Second + 100*time.Millisecond)
	if !sw.Ready() {
		t.Error("Expected window to be ready after old requests expire")
	}
}

func TestNew(t *testing.T) {
	if _, err := New("token_bucket", 60, 5); err != nil {
		t.Errorf("Expected token_bucket to be built, got error: %v", err)
	}
	if _, err := New("sliding_window", 60, 5); err != nil {
		t.Errorf("Expected sliding_window to be built, got error: %v", err)
	}
	if _, err := New("leaky_bucket", 60, 5); err == nil {
		t.Error("Expected unknown limiter type to be rejected")
	}
	if _, err := New("token_bucket", 0, 5); err == nil {
		t.Error("Expected zero rate to be rejected")
	}
	if _, err := New("token_bucket", 60, 0); err == nil {
		t.Error("Expected zero burst to be rejected")
	}
}

func TestNewTokenBucketPeriod(t *testing.T) {
	lim, err := New("token_bucket", 60, 5)
	if err != nil {
		t.Fatalf("Expected limiter to be built, got error: %v", err)
	}

	tb, ok := lim.(*TokenBucket)
	if !ok {
		t.Fatalf("Expected *TokenBucket, got %T", lim)
	}
	if tb.capacity != 5 {
		t.Errorf("Expected capacity 5, got %d", tb.capacity)
	}
	// 5 tokens every 5 seconds averages 60 per minute
	if tb.refillPeriod != 5*time.Second {
		t.Errorf("Expected refill period 5s, got %v", tb.refillPeriod)
	}
}

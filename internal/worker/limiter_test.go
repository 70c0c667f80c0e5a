package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow("https://feeds.example.com/a.xml") {
		t.Error("first request should be allowed")
	}
	if !l.Allow("https://feeds.example.com/b.xml") {
		t.Error("second request within burst should be allowed")
	}
	if l.Allow("https://feeds.example.com/c.xml") {
		t.Error("third request should exceed the burst")
	}
}

func TestLimiter_HostsAreIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://feeds.example.com/a.xml") {
		t.Fatal("first host should be allowed")
	}
	if !l.Allow("https://rss.other.org/b.xml") {
		t.Error("a different host must have its own budget")
	}
	if l.Allow("https://feeds.example.com/c.xml") {
		t.Error("first host should be exhausted")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.01, 1)

	// Drain the burst so the next Wait would block for ~100s.
	if !l.Allow("https://feeds.example.com/a.xml") {
		t.Fatal("burst request should be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "https://feeds.example.com/b.xml"); err == nil {
		t.Error("Wait should fail once the context deadline passes")
	}
}

func TestLimiter_BadURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if l.Allow("://not-a-url") {
		t.Error("unparseable URL should not be allowed")
	}
}

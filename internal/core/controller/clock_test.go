package controller

import (
	"testing"
	"time"
)

func TestTickerStartStop(t *testing.T) {
	clock := NewTicker(10 * time.Millisecond)
	clock.Start()
	clock.Start()

	select {
	case <-clock.C():
	case <-time.After(time.Second):
		t.Fatal("no tick received")
	}

	clock.Stop()
	clock.Stop()
	select {
	case <-clock.C():
		t.Fatal("tick received after stop")
	case <-time.After(50 * time.Millisecond):
	}

	clock.Start()
	defer clock.Stop()
	select {
	case <-clock.C():
	case <-time.After(time.Second):
		t.Fatal("no tick after restart")
	}
}

func TestNewTickerDefaultsInterval(t *testing.T) {
	if clock := NewTicker(0); clock.interval != time.Second {
		t.Fatalf("expected one second default, got %s", clock.interval)
	}
}

func TestQueueDrainsInOrder(t *testing.T) {
	q := newQueue()
	var got []int
	for i := 0; i < 3; i++ {
		value := i
		q.push(func() { got = append(got, value) })
	}

	select {
	case <-q.ready:
	default:
		t.Fatal("queue not signalled")
	}
	for _, task := range q.drain() {
		task()
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Fatalf("unexpected order %v", got)
	}
	if len(q.drain()) != 0 {
		t.Fatal("queue not empty after drain")
	}
}

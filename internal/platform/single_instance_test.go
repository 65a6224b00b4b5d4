package platform

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestSingleInstanceActivatesRunningCopy(t *testing.T) {
	appName := fmt.Sprintf("hitit-test-%d", time.Now().UnixNano())
	activated := make(chan struct{}, 1)

	guard, err := AcquireSingleInstance(appName, func() { activated <- struct{}{} })
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	if _, err := AcquireSingleInstance(appName, nil); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestPortFromNameIsStable(t *testing.T) {
	first := portFromName("HITit")
	if first != portFromName("HITit") {
		t.Fatal("port must be deterministic")
	}
	if first < 20000 || first > 39999 {
		t.Fatalf("port %d out of range", first)
	}
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if guard.Address() != "" {
		t.Fatal("nil guard has no address")
	}
}

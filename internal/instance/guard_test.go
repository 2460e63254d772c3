package instance_test

import (
	"os"
	"testing"

	"promptvault/internal/instance"
	"promptvault/internal/logging"
)

func TestGuardExcludesSecondHolder(t *testing.T) {
	dir := t.TempDir()
	first := instance.NewGuard(dir, logging.NewNop())
	second := instance.NewGuard(dir, logging.NewNop())

	ok, err := first.TryAcquire()
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if !ok {
		t.Fatal("first acquire should succeed")
	}
	t.Cleanup(first.Release)

	ok, err = second.TryAcquire()
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if ok {
		t.Fatal("second acquire should fail while lock is held")
	}

	if pid := second.PrimaryPID(); pid != os.Getpid() {
		t.Fatalf("primary pid = %d, want %d", pid, os.Getpid())
	}
}

func TestGuardReleaseAllowsReacquire(t *testing.T) {
	dir := t.TempDir()
	guard := instance.NewGuard(dir, logging.NewNop())

	if ok, err := guard.TryAcquire(); err != nil || !ok {
		t.Fatalf("acquire: %v, %v", ok, err)
	}
	guard.Release()

	other := instance.NewGuard(dir, logging.NewNop())
	ok, err := other.TryAcquire()
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	if !ok {
		t.Fatal("reacquire should succeed after release")
	}
	other.Release()
}

func TestAlive(t *testing.T) {
	if !instance.Alive(os.Getpid()) {
		t.Fatal("current process should be alive")
	}
	if instance.Alive(0) || instance.Alive(-1) {
		t.Fatal("non-positive pids are never alive")
	}
}

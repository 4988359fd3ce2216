package scheduler

import (
	"testing"
	"time"
)

func TestCleanupIntervalSatuJam(t *testing.T) {
	if cleanupInterval != time.Hour {
		t.Errorf("cleanupInterval = %v, want %v", cleanupInterval, time.Hour)
	}
}

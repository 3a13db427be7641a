package memory

import (
	"testing"

	"blogsphere/internal/adapter/kvtest"
)

func TestConformance(t *testing.T) {
	kvtest.Run(t, New())
}

package generate

import (
	"os"
	"testing"

	"github.com/halewijn/edo31/logging"
)

func TestMain(m *testing.M) {
	logging.SetGlobalLogger(&logging.NoOpLogger{})
	os.Exit(m.Run())
}

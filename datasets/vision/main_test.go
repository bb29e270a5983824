package vision

import "os"
import "testing"

import "github.com/magneticio/go-common/logging"

func TestMain(m *testing.M) {
	logging.Init(os.Stdout, os.Stderr)
	os.Exit(m.Run())
}

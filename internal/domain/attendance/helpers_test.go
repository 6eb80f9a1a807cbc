package attendance

import (
	"testing"
	"time"

	"github.com/siteledger/siteledger-backend-go/internal/pkg/dateutil"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dateutil.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

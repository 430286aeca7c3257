package publish

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/katype/internal/model"
)

func TestNewEventJSON(t *testing.T) {
	ended := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("X", 3600))
	ev := NewEvent(model.Run{
		RunID:       "6f1c2d7e-2b1a-4a8e-9c1d-0f6f0b8f4a11",
		Lang:        "en",
		Words:       15,
		WPM:         52,
		Accuracy:    93,
		Consistency: 40,
		DurationS:   17,
		EndedAt:     ended,
		Code:        "WyJhIl0=",
	})
	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)
	for _, needle := range []string{`"run_id":"6f1c2d7e-`, `"acc":93`, `"consistency":40`, `"ended_at":"2026-03-04T04:06:07Z"`} {
		if !strings.Contains(out, needle) {
			t.Fatalf("payload missing %s: %s", needle, out)
		}
	}
}

func TestConnectRequiresURL(t *testing.T) {
	if _, err := Connect(model.PublishConfig{}); err == nil {
		t.Fatalf("expected error for empty url")
	}
}

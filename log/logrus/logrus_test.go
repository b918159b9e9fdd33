package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/unkn0wn-root/basecodec"
)

func TestCodecRejectionsReachLogrus(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	c := basecodec.New(basecodec.Options{
		MaxInputLen: 2,
		Logger:      LogrusLogger{E: logrus.NewEntry(l)},
	})

	if _, err := c.Encode(basecodec.Base36, []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected size error")
	}
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.DebugLevel {
		t.Fatalf("expected a debug entry, got %+v", e)
	}
	if e.Data["len"] != 3 || e.Data["max"] != 2 {
		t.Fatalf("unexpected fields: %v", e.Data)
	}
}

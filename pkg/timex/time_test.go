package timex

import (
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}

	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}

	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_ScanRoundTrip(t *testing.T) {
	src := time.Date(2024, 6, 1, 8, 30, 0, 0, time.Local)

	var tt Time
	if err := tt.Scan(src.Format(layout)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if tt.Unix() != src.Unix() {
		t.Errorf("Scan() = %v, want %v", tt.Unix(), src.Unix())
	}

	v, err := tt.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if got, ok := v.(time.Time); !ok || got.Unix() != src.Unix() {
		t.Errorf("Value() = %v, want %v", v, src)
	}
}

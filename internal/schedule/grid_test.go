package schedule

import (
	"testing"
	"time"

	"cozy-cli/internal/model"
)

func TestWeekColumns_PlacesEventInItsDayColumn(t *testing.T) {
	cfg := DefaultConfig()
	store := NewEventStore([]model.CalendarEvent{
		{ID: "1", Title: "Deep Work", Date: "2024-06-10", StartHour: 9, Duration: 2, Color: DefaultPalette[0]},
	})

	// 2024-06-12 is a Wednesday; its week runs Mon 2024-06-10 .. Sun 2024-06-16.
	anchor := date(2024, time.June, 12)
	cols := cfg.WeekColumns(store, anchor, anchor)
	if len(cols) != 7 {
		t.Fatalf("expected 7 columns, got %d", len(cols))
	}
	if cols[0].DateStr != "2024-06-10" {
		t.Fatalf("expected Monday column 2024-06-10, got %s", cols[0].DateStr)
	}
	if len(cols[0].Spans) != 1 {
		t.Fatalf("expected 1 span in Monday column, got %d", len(cols[0].Spans))
	}
	sp := cols[0].Spans[0]
	if sp.Top != (9-8)*cfg.RowHeight {
		t.Fatalf("expected top %d, got %d", (9-8)*cfg.RowHeight, sp.Top)
	}
	if sp.Height != 2*cfg.RowHeight {
		t.Fatalf("expected height %d, got %d", 2*cfg.RowHeight, sp.Height)
	}
	for i := 1; i < 7; i++ {
		if len(cols[i].Spans) != 0 {
			t.Fatalf("unexpected spans in column %d", i)
		}
	}
}

func TestWeekColumns_OverlapKeepsStoreOrder(t *testing.T) {
	cfg := DefaultConfig()
	store := NewEventStore([]model.CalendarEvent{
		{ID: "under", Date: "2024-06-10", StartHour: 9, Duration: 2},
		{ID: "over", Date: "2024-06-10", StartHour: 9, Duration: 2},
	})
	cols := cfg.WeekColumns(store, date(2024, time.June, 10), date(2024, time.June, 10))
	spans := cols[0].Spans
	if len(spans) != 2 {
		t.Fatalf("expected both overlapping events, got %d", len(spans))
	}
	// Later store entries render later, i.e. on top. No column splitting.
	if spans[0].Event.ID != "under" || spans[1].Event.ID != "over" {
		t.Fatalf("expected store order preserved, got %s then %s", spans[0].Event.ID, spans[1].Event.ID)
	}
	if spans[0].Top != spans[1].Top || spans[0].Height != spans[1].Height {
		t.Fatalf("expected identical geometry for identical ranges")
	}
}

func TestDayColumn_TodayFlag(t *testing.T) {
	cfg := DefaultConfig()
	store := NewEventStore(nil)
	now := date(2024, time.June, 12)
	col := cfg.DayColumnFor(store, now, now)
	if !col.IsToday {
		t.Fatalf("expected IsToday on the current date")
	}
	col = cfg.DayColumnFor(store, now.AddDate(0, 0, 1), now)
	if col.IsToday {
		t.Fatalf("did not expect IsToday on tomorrow")
	}
}

func TestMonthCells_ChipTruncationAndOverflow(t *testing.T) {
	cfg := DefaultConfig()
	store := NewEventStore([]model.CalendarEvent{
		{ID: "a", Title: "A", Date: "2024-06-10", StartHour: 8, Duration: 1},
		{ID: "b", Title: "B", Date: "2024-06-10", StartHour: 9, Duration: 1},
		{ID: "c", Title: "C", Date: "2024-06-10", StartHour: 10, Duration: 1},
		{ID: "d", Title: "D", Date: "2024-06-10", StartHour: 11, Duration: 1},
		{ID: "e", Title: "E", Date: "2024-06-10", StartHour: 12, Duration: 1},
	})
	cells := cfg.MonthCells(store, date(2024, time.June, 1), date(2024, time.June, 1))
	if len(cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(cells))
	}
	var busy *MonthCellView
	for i := range cells {
		if cells[i].DateStr == "2024-06-10" {
			busy = &cells[i]
			break
		}
	}
	if busy == nil {
		t.Fatalf("2024-06-10 not in June grid")
	}
	if len(busy.Chips) != 3 {
		t.Fatalf("expected 3 chips, got %d", len(busy.Chips))
	}
	if busy.Chips[0].ID != "a" || busy.Chips[2].ID != "c" {
		t.Fatalf("chips not in store order: %+v", busy.Chips)
	}
	if busy.Overflow != 2 {
		t.Fatalf("expected overflow 2, got %d", busy.Overflow)
	}
}

func TestHeaderLabel_ReflectsAnchorAndMode(t *testing.T) {
	anchor := date(2024, time.June, 12)
	if got := HeaderLabel(ViewMonth, anchor); got != "June 2024" {
		t.Fatalf("month label: got %q", got)
	}
	// Week view still shows the month containing the anchor.
	if got := HeaderLabel(ViewWeek, anchor); got != "June 2024" {
		t.Fatalf("week label: got %q", got)
	}
	if got := HeaderLabel(ViewDay, anchor); got != "Wednesday, June 12 2024" {
		t.Fatalf("day label: got %q", got)
	}
}

func TestConfigHours_DefaultWindow(t *testing.T) {
	cfg := DefaultConfig()
	hours := cfg.Hours()
	if len(hours) != 15 {
		t.Fatalf("expected 15 hour slots, got %d", len(hours))
	}
	if hours[0] != 8 || hours[len(hours)-1] != 22 {
		t.Fatalf("expected 8..22, got %d..%d", hours[0], hours[len(hours)-1])
	}
}

package schedule

import (
	"fmt"
	"time"

	"cozy-cli/internal/model"
)

// Config carries the overridable calendar constants. The week start (Monday)
// is fixed and intentionally not configurable.
type Config struct {
	// FirstHour..LastHour is the inclusive visible-hours window.
	FirstHour int
	LastHour  int
	// RowHeight is the vertical size of one hour slot, in layout units.
	RowHeight int
	// Palette holds the event color swatches; Palette[0] is the default for
	// newly created events.
	Palette []string
}

// DefaultPalette is the six macaron pastel swatches for events.
var DefaultPalette = []string{
	"#FECACA", // pink
	"#FED7AA", // peach
	"#FEF08A", // lemon
	"#BBF7D0", // mint
	"#BFDBFE", // sky
	"#E9D5FF", // lavender
}

func DefaultConfig() Config {
	return Config{FirstHour: 8, LastHour: 22, RowHeight: 5, Palette: DefaultPalette}
}

// Hours lists the visible hour slots, first to last inclusive.
func (c Config) Hours() []int {
	hours := make([]int, 0, c.LastHour-c.FirstHour+1)
	for h := c.FirstHour; h <= c.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// SlotCount is the number of visible hour rows.
func (c Config) SlotCount() int { return c.LastHour - c.FirstHour + 1 }

// Span is the absolute vertical placement of one event inside its day column.
// Spans are emitted in store order; overlapping events are not laid out side
// by side, later ones simply stack on top.
type Span struct {
	Event  model.CalendarEvent
	Top    int
	Height int
}

// DayColumn is one rendered day in week or day view.
type DayColumn struct {
	Date    time.Time
	DateStr string
	IsToday bool
	Spans   []Span
}

func (c Config) span(ev model.CalendarEvent) Span {
	return Span{
		Event:  ev,
		Top:    (ev.StartHour - c.FirstHour) * c.RowHeight,
		Height: ev.Duration * c.RowHeight,
	}
}

// WeekColumns projects the events onto the 7 days of the week containing
// anchor. now supplies "today" for highlighting.
func (c Config) WeekColumns(store *EventStore, anchor, now time.Time) []DayColumn {
	days := WeekDays(anchor)
	cols := make([]DayColumn, 0, len(days))
	for _, d := range days {
		cols = append(cols, c.dayColumn(store, d, now))
	}
	return cols
}

// DayColumnFor projects the events of the single day containing anchor.
func (c Config) DayColumnFor(store *EventStore, anchor, now time.Time) DayColumn {
	return c.dayColumn(store, anchor, now)
}

func (c Config) dayColumn(store *EventStore, day, now time.Time) DayColumn {
	ds := NormalizeDate(day)
	col := DayColumn{Date: day, DateStr: ds, IsToday: NormalizeDate(now) == ds}
	for _, ev := range store.ByDate(ds) {
		col.Spans = append(col.Spans, c.span(ev))
	}
	return col
}

// maxMonthChips caps the per-cell title chips in month view.
const maxMonthChips = 3

// MonthCellView is one projected cell of the month grid.
type MonthCellView struct {
	Date           time.Time
	DateStr        string
	IsCurrentMonth bool
	IsToday        bool
	// Chips holds at most maxMonthChips events in store order.
	Chips []model.CalendarEvent
	// Overflow is the count hidden behind the "+N" indicator (0 when all fit).
	Overflow int
}

// MonthCells projects the events onto the fixed 42-cell grid of the month
// containing anchor.
func (c Config) MonthCells(store *EventStore, anchor, now time.Time) []MonthCellView {
	today := NormalizeDate(now)
	cells := MonthDays(anchor)
	out := make([]MonthCellView, 0, len(cells))
	for _, cell := range cells {
		ds := NormalizeDate(cell.Date)
		v := MonthCellView{
			Date:           cell.Date,
			DateStr:        ds,
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        ds == today,
		}
		evs := store.ByDate(ds)
		if len(evs) > maxMonthChips {
			v.Chips = evs[:maxMonthChips]
			v.Overflow = len(evs) - maxMonthChips
		} else {
			v.Chips = evs
		}
		out = append(out, v)
	}
	return out
}

// HeaderLabel is the presentational title for the current projection. Month
// and week views show "Month Year" (the week view shows the month containing
// the anchor); day view shows the full day. It always reflects the anchor.
func HeaderLabel(mode ViewMode, anchor time.Time) string {
	switch mode {
	case ViewDay:
		return fmt.Sprintf("%s, %s %d %d",
			anchor.Weekday().String(), anchor.Month().String(), anchor.Day(), anchor.Year())
	default:
		return fmt.Sprintf("%s %d", anchor.Month().String(), anchor.Year())
	}
}

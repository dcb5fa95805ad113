package trigger

import "time"

// -----------------------------------------------------------------------------
// Trigger Spec
// -----------------------------------------------------------------------------

// Spec is the data carried by a trigger node: a free-text firing condition
// plus an optional recurrence schedule. The schedule is data only; nothing in
// this package arms a timer.
type Spec struct {
	TriggerText string         `json:"trigger_text"       yaml:"trigger_text"`
	Schedule    ScheduleConfig `json:"schedule"           yaml:"schedule"`
}

// NewSpec returns the default spec for a freshly dropped trigger node:
// disabled, one-shot, pinned to the current date at 9:00 AM.
func NewSpec(now time.Time) *Spec {
	return &Spec{
		Schedule: ScheduleConfig{
			Enabled: false,
			RunOnce: true,
			Date:    &Date{Year: now.Year(), Month: now.Month(), Day: now.Day()},
			Time:    TimeOfDay{Hour12: 9, Minute: 0, Meridiem: AM},
		},
	}
}

// -----------------------------------------------------------------------------
// Schedule Config
// -----------------------------------------------------------------------------

type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// TimeOfDay is a 12-hour clock reading as entered in the schedule form.
type TimeOfDay struct {
	Hour12   int      `json:"hour"     yaml:"hour"     validate:"gte=1,lte=12"`
	Minute   int      `json:"minute"   yaml:"minute"   validate:"gte=0,lte=59"`
	Meridiem Meridiem `json:"meridiem" yaml:"meridiem" validate:"oneof=AM PM"`
}

// Hour24 converts the reading to a 24-hour clock hour. 12 AM maps to 0 and
// 12 PM stays 12.
func (t TimeOfDay) Hour24() int {
	switch {
	case t.Meridiem == AM && t.Hour12 == 12:
		return 0
	case t.Meridiem == PM && t.Hour12 != 12:
		return t.Hour12 + 12
	default:
		return t.Hour12
	}
}

// Date is a calendar date without a time component.
type Date struct {
	Year  int        `json:"year"  yaml:"year"`
	Month time.Month `json:"month" yaml:"month"`
	Day   int        `json:"day"   yaml:"day"`
}

// ScheduleConfig holds the recurrence settings edited in the trigger form.
// When RunOnce is set the schedule fires on a single calendar date; otherwise
// it repeats on the selected weekdays and months, where an empty selection
// means "every".
type ScheduleConfig struct {
	Enabled      bool           `json:"enabled"                  yaml:"enabled"`
	RunOnce      bool           `json:"run_once"                 yaml:"run_once"`
	Date         *Date          `json:"date,omitempty"           yaml:"date,omitempty"`
	Time         TimeOfDay      `json:"time"                     yaml:"time"`
	DaysOfWeek   []time.Weekday `json:"days_of_week,omitempty"   yaml:"days_of_week,omitempty"`
	MonthsOfYear []time.Month   `json:"months_of_year,omitempty" yaml:"months_of_year,omitempty"`
}

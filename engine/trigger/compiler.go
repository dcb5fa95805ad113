package trigger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// -----------------------------------------------------------------------------
// Expression
// -----------------------------------------------------------------------------

// Expression is a canonical five-field cron line
// (minute hour day-of-month month day-of-week). The zero value Disabled
// means the trigger has no schedule; it is a normal outcome, not an error.
type Expression string

const Disabled Expression = ""

func (e Expression) IsDisabled() bool {
	return e == Disabled
}

func (e Expression) String() string {
	return string(e)
}

// Precompiled 5-field parser shared by all validations.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Validate checks that the expression is consumable by a standard cron
// scheduler. Disabled is always valid.
func (e Expression) Validate() error {
	if e.IsDisabled() {
		return nil
	}
	if _, err := cronParser.Parse(string(e)); err != nil {
		return fmt.Errorf("invalid schedule expression %q: %w", string(e), err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Compiler
// -----------------------------------------------------------------------------

// Compile maps recurrence settings to their canonical schedule
// expression. It is pure and total over well-formed input: a disabled
// schedule, and a one-shot schedule without a date, both compile to Disabled.
//
// One-shot schedules pin day-of-month and month and wildcard the weekday;
// repeating schedules wildcard day-of-month and select by weekday and month,
// where an empty selection compiles to "*".
func Compile(cfg *ScheduleConfig) Expression {
	if cfg == nil || !cfg.Enabled {
		return Disabled
	}
	minute := strconv.Itoa(cfg.Time.Minute)
	hour := strconv.Itoa(cfg.Time.Hour24())
	if cfg.RunOnce {
		if cfg.Date == nil {
			return Disabled
		}
		return Expression(fmt.Sprintf("%s %s %d %d *", minute, hour, cfg.Date.Day, int(cfg.Date.Month)))
	}
	dow := fieldOf(cfg.DaysOfWeek)
	month := fieldOf(cfg.MonthsOfYear)
	return Expression(fmt.Sprintf("%s %s * %s %s", minute, hour, month, dow))
}

// fieldOf renders a selection set as a cron field: empty means every value,
// otherwise the sorted, deduplicated numeric codes joined by commas.
func fieldOf[T ~int](values []T) string {
	if len(values) == 0 {
		return "*"
	}
	codes := make([]int, 0, len(values))
	for _, v := range values {
		codes = append(codes, int(v))
	}
	slices.Sort(codes)
	codes = slices.Compact(codes)
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

package trigger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasflow/canvasflow/engine/trigger"
)

func TestCompile(t *testing.T) {
	t.Run("Should compile to Disabled when schedule is not enabled", func(t *testing.T) {
		cfg := &trigger.ScheduleConfig{
			Enabled: false,
			RunOnce: true,
			Date:    &trigger.Date{Year: 2025, Month: time.June, Day: 15},
			Time:    trigger.TimeOfDay{Hour12: 2, Minute: 30, Meridiem: trigger.PM},
		}
		assert.True(t, trigger.Compile(cfg).IsDisabled())
	})
	t.Run("Should compile to Disabled when nil", func(t *testing.T) {
		assert.True(t, trigger.Compile(nil).IsDisabled())
	})
	t.Run("Should compile to Disabled for one-shot without a date", func(t *testing.T) {
		cfg := &trigger.ScheduleConfig{
			Enabled: true,
			RunOnce: true,
			Time:    trigger.TimeOfDay{Hour12: 9, Minute: 0, Meridiem: trigger.AM},
		}
		assert.True(t, trigger.Compile(cfg).IsDisabled())
	})
	t.Run("Should pin date and wildcard weekday for one-shot schedules", func(t *testing.T) {
		cfg := &trigger.ScheduleConfig{
			Enabled: true,
			RunOnce: true,
			Date:    &trigger.Date{Year: 2025, Month: time.June, Day: 15},
			Time:    trigger.TimeOfDay{Hour12: 2, Minute: 30, Meridiem: trigger.PM},
		}
		assert.Equal(t, trigger.Expression("30 14 15 6 *"), trigger.Compile(cfg))
	})
	t.Run("Should select weekdays and wildcard day-of-month for repeating schedules", func(t *testing.T) {
		cfg := &trigger.ScheduleConfig{
			Enabled:    true,
			RunOnce:    false,
			Time:       trigger.TimeOfDay{Hour12: 9, Minute: 0, Meridiem: trigger.AM},
			DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
		}
		assert.Equal(t, trigger.Expression("0 9 * * 1,3"), trigger.Compile(cfg))
	})
	t.Run("Should wildcard both selections when empty", func(t *testing.T) {
		cfg := &trigger.ScheduleConfig{
			Enabled: true,
			Time:    trigger.TimeOfDay{Hour12: 12, Minute: 5, Meridiem: trigger.AM},
		}
		assert.Equal(t, trigger.Expression("5 0 * * *"), trigger.Compile(cfg))
	})
	t.Run("Should sort and deduplicate selections", func(t *testing.T) {
		cfg := &trigger.ScheduleConfig{
			Enabled:      true,
			Time:         trigger.TimeOfDay{Hour12: 11, Minute: 45, Meridiem: trigger.PM},
			DaysOfWeek:   []time.Weekday{time.Saturday, time.Sunday, time.Saturday},
			MonthsOfYear: []time.Month{time.December, time.January},
		}
		assert.Equal(t, trigger.Expression("45 23 * 1,12 0,6"), trigger.Compile(cfg))
	})
	t.Run("Should be deterministic for the same input", func(t *testing.T) {
		cfg := &trigger.ScheduleConfig{
			Enabled:      true,
			Time:         trigger.TimeOfDay{Hour12: 6, Minute: 15, Meridiem: trigger.AM},
			DaysOfWeek:   []time.Weekday{time.Friday, time.Monday},
			MonthsOfYear: []time.Month{time.March},
		}
		first := trigger.Compile(cfg)
		for range 10 {
			assert.Equal(t, first, trigger.Compile(cfg))
		}
	})
	t.Run("Should produce expressions a cron parser accepts", func(t *testing.T) {
		cases := []*trigger.ScheduleConfig{
			{Enabled: true, RunOnce: true, Date: &trigger.Date{Year: 2025, Month: time.June, Day: 15},
				Time: trigger.TimeOfDay{Hour12: 2, Minute: 30, Meridiem: trigger.PM}},
			{Enabled: true, Time: trigger.TimeOfDay{Hour12: 9, Minute: 0, Meridiem: trigger.AM},
				DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday}},
			{Enabled: true, Time: trigger.TimeOfDay{Hour12: 12, Minute: 59, Meridiem: trigger.PM},
				MonthsOfYear: []time.Month{time.February, time.October}},
		}
		for _, cfg := range cases {
			require.NoError(t, trigger.Compile(cfg).Validate())
		}
	})
}

func TestTimeOfDay_Hour24(t *testing.T) {
	t.Run("Should map 12 AM to hour zero", func(t *testing.T) {
		assert.Equal(t, 0, trigger.TimeOfDay{Hour12: 12, Meridiem: trigger.AM}.Hour24())
	})
	t.Run("Should keep 12 PM at noon", func(t *testing.T) {
		assert.Equal(t, 12, trigger.TimeOfDay{Hour12: 12, Meridiem: trigger.PM}.Hour24())
	})
	t.Run("Should shift PM hours past noon", func(t *testing.T) {
		assert.Equal(t, 14, trigger.TimeOfDay{Hour12: 2, Meridiem: trigger.PM}.Hour24())
		assert.Equal(t, 23, trigger.TimeOfDay{Hour12: 11, Meridiem: trigger.PM}.Hour24())
	})
	t.Run("Should keep AM hours unchanged", func(t *testing.T) {
		assert.Equal(t, 1, trigger.TimeOfDay{Hour12: 1, Meridiem: trigger.AM}.Hour24())
		assert.Equal(t, 11, trigger.TimeOfDay{Hour12: 11, Meridiem: trigger.AM}.Hour24())
	})
}

func TestNewSpec(t *testing.T) {
	t.Run("Should default to a disabled one-shot pinned to today", func(t *testing.T) {
		now := time.Date(2025, time.June, 15, 16, 4, 0, 0, time.UTC)
		spec := trigger.NewSpec(now)
		require.NotNil(t, spec.Schedule.Date)
		assert.False(t, spec.Schedule.Enabled)
		assert.True(t, spec.Schedule.RunOnce)
		assert.Equal(t, trigger.Date{Year: 2025, Month: time.June, Day: 15}, *spec.Schedule.Date)
		assert.Equal(t, trigger.TimeOfDay{Hour12: 9, Minute: 0, Meridiem: trigger.AM}, spec.Schedule.Time)
		assert.True(t, trigger.Compile(&spec.Schedule).IsDisabled())
	})
}

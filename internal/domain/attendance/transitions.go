package attendance

import "github.com/shopspring/decimal"

// MarkAction is an admin action on an (employee, date) cell.
type MarkAction string

const (
	ActionMarkPresent  MarkAction = "mark_present"
	ActionMarkAbsent   MarkAction = "mark_absent"
	ActionMarkLate     MarkAction = "mark_late"
	ActionMarkOvertime MarkAction = "mark_overtime"
	ActionMarkHalfDay  MarkAction = "mark_half_day"
	ActionMarkCustom   MarkAction = "mark_custom"
)

// actionTargets maps each action to the status it writes. Every action is
// re-enterable: the last action on a day wins, nothing is ever locked.
var actionTargets = map[MarkAction]DayStatus{
	ActionMarkPresent:  StatusPresent,
	ActionMarkAbsent:   StatusAbsent,
	ActionMarkLate:     StatusPresentLate,
	ActionMarkOvertime: StatusOvertime,
	ActionMarkHalfDay:  StatusHalfDay,
	ActionMarkCustom:   StatusCustom,
}

// Transition returns the status an action moves the day to. current is the
// zero value when no record exists for the day yet. Marking late requires an
// already-marked day; every other action is legal from any state.
func Transition(current DayStatus, action MarkAction) (DayStatus, error) {
	target, ok := actionTargets[action]
	if !ok {
		return "", ErrUnknownAction
	}
	if action == ActionMarkLate && current == "" {
		return "", ErrNoRecordToMarkLate
	}
	return target, nil
}

// OvertimeHoursPerDay is the imputed length of a working day used to derive
// an hourly rate from the daily wage.
var OvertimeHoursPerDay = decimal.NewFromInt(8)

// OvertimeMultiplier is the premium applied to overtime hours.
var OvertimeMultiplier = decimal.RequireFromString("1.5")

// OvertimeRate derives the hourly overtime base rate from a daily wage.
func OvertimeRate(dailyWage decimal.Decimal) decimal.Decimal {
	return dailyWage.Div(OvertimeHoursPerDay)
}

// OvertimeAmount computes overtime pay: hours x (dailyWage / 8) x 1.5.
func OvertimeAmount(dailyWage, hours decimal.Decimal) decimal.Decimal {
	return hours.Mul(OvertimeRate(dailyWage)).Mul(OvertimeMultiplier)
}

package attendance

import "errors"

var (
	ErrRecordNotFound     = errors.New("attendance record not found")
	ErrUnknownAction      = errors.New("unknown attendance action")
	ErrNoRecordToMarkLate = errors.New("cannot mark late: day has not been marked yet")
	ErrDateNotEditable    = errors.New("date is outside the editable window")
	ErrInvalidHours       = errors.New("overtime hours must be greater than zero")
	ErrInvalidAmount      = errors.New("custom amount must be greater than zero")
)

package overtime

import "errors"

var (
	ErrOvertimeNotFound         = errors.New("overtime log not found")
	ErrDuplicateOvertime        = errors.New("an overtime log already exists for this date")
	ErrOvertimeAlreadyProcessed = errors.New("overtime log already processed")
)

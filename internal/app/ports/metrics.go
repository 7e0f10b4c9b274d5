package ports

import "unitsim/internal/domain/unit"

type CommandMetrics interface {
	RecordSuccess(resultCode unit.ResultCode)
	RecordConflict()
	RecordFailure()
}

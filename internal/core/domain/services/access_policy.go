package services

import (
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/pkg/errs"
)

// Action identifies an operation subject to role-based authorization.
type Action string

// Actions gated by the access policy.
const (
	ActionCreateOrder      Action = "createOrder"
	ActionReportProduction Action = "reportProduction"
	ActionValidate         Action = "validateProduction"
	ActionFinalize         Action = "finalizeOrder"
	ActionDeleteOrder      Action = "deleteOrder"
	ActionPatchOrder       Action = "patchOrder"
	ActionTriggerPause     Action = "triggerPause"
	ActionDeleteLog        Action = "deleteLog"
	ActionRenameLogs       Action = "renameLogs"
)

// AccessPolicy maps an authenticated caller's role to the actions it may
// perform. It holds no state; authorization is a pure function of role and
// action. Order-level visibility is the VisibilityFilter's concern, not this
// policy's.
type AccessPolicy struct{}

// NewAccessPolicy creates the access policy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Allows returns nil when the role may perform the action, or an
// AccessForbiddenError otherwise.
//
// Rules:
//   - Order creation, validation, forced finalization, deletion, patching,
//     the manual pause sweep, and log maintenance belong to planning (PCP) alone
//   - Production reporting belongs to the sector roles; a PCP caller is rejected
func (AccessPolicy) Allows(role kernel.Sector, action Action) error {
	if err := role.Validate(); err != nil {
		return err
	}

	switch action {
	case ActionCreateOrder, ActionValidate, ActionFinalize,
		ActionDeleteOrder, ActionPatchOrder, ActionTriggerPause,
		ActionDeleteLog, ActionRenameLogs:
		if !role.IsPCP() {
			return errs.NewAccessForbiddenError(string(action), role.String())
		}
		return nil

	case ActionReportProduction:
		if role.IsPCP() {
			return errs.NewAccessForbiddenError(string(action), role.String())
		}
		return nil

	default:
		return errs.NewValueIsInvalidError("action")
	}
}

// SeesUnfiltered reports whether the role reads the order set without the
// visibility filter: planning, the warehouse, and administrators do.
func (AccessPolicy) SeesUnfiltered(role kernel.Sector) bool {
	switch role {
	case kernel.SectorPCP, kernel.SectorWarehouse, kernel.SectorAdmin:
		return true
	default:
		return false
	}
}

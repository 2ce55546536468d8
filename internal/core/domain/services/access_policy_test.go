package services_test

import (
	"testing"

	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/services"
	"ostrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessPolicy_Allows(t *testing.T) {
	policy := services.NewAccessPolicy()
	electrical := kernel.Sector("Electrical")

	pcpOnly := []services.Action{
		services.ActionCreateOrder,
		services.ActionValidate,
		services.ActionFinalize,
		services.ActionDeleteOrder,
		services.ActionPatchOrder,
		services.ActionTriggerPause,
		services.ActionDeleteLog,
		services.ActionRenameLogs,
	}

	t.Run("pcp_only_actions", func(t *testing.T) {
		for _, action := range pcpOnly {
			require.NoError(t, policy.Allows(kernel.SectorPCP, action), "PCP performing %s", action)
			require.ErrorIs(t, policy.Allows(electrical, action), errs.ErrAccessForbidden,
				"sector performing %s", action)
			require.ErrorIs(t, policy.Allows(kernel.SectorWarehouse, action), errs.ErrAccessForbidden,
				"warehouse performing %s", action)
		}
	})

	t.Run("report_production_rejects_pcp", func(t *testing.T) {
		require.ErrorIs(t,
			policy.Allows(kernel.SectorPCP, services.ActionReportProduction), errs.ErrAccessForbidden)
	})

	t.Run("report_production_allows_sector_roles", func(t *testing.T) {
		for _, role := range []kernel.Sector{electrical, kernel.Sector("Mechanical"), kernel.SectorWarehouse} {
			require.NoError(t, policy.Allows(role, services.ActionReportProduction), "role %s", role)
		}
	})

	t.Run("empty_role_is_rejected", func(t *testing.T) {
		require.ErrorIs(t, policy.Allows("", services.ActionCreateOrder), errs.ErrValueIsRequired)
	})

	t.Run("unknown_action_is_invalid", func(t *testing.T) {
		require.ErrorIs(t, policy.Allows(kernel.SectorPCP, services.Action("fly")), errs.ErrValueIsInvalid)
	})
}

func TestAccessPolicy_SeesUnfiltered(t *testing.T) {
	policy := services.NewAccessPolicy()

	assert.True(t, policy.SeesUnfiltered(kernel.SectorPCP))
	assert.True(t, policy.SeesUnfiltered(kernel.SectorWarehouse))
	assert.True(t, policy.SeesUnfiltered(kernel.SectorAdmin))
	assert.False(t, policy.SeesUnfiltered(kernel.Sector("Electrical")))
	assert.False(t, policy.SeesUnfiltered(kernel.Sector("Montagem")))
}

package kernel

import "ostrack/internal/pkg/errs"

// Sector identifies a production station or role. It is a value object over the
// sector's name; the empty string means "no sector" and is invalid wherever a
// concrete sector is required.
type Sector string

// Special roles and labels the business rules refer to by name. Production
// sectors themselves are plant configuration and are not enumerated here.
const (
	// SectorPCP is the planning and control role. Sole approver of production
	// and the only role allowed to create, finalize, patch, or delete orders.
	SectorPCP Sector = "PCP"

	// SectorAdmin is the administrative role with unfiltered read access.
	SectorAdmin Sector = "ADMIN"

	// SectorWarehouse is the warehouse station. Like PCP and ADMIN it sees the
	// unfiltered order set.
	SectorWarehouse Sector = "Almoxarifado"

	// SectorSystem labels log entries written by automated jobs rather than a caller.
	SectorSystem Sector = "System"
)

// NewSector creates a Sector from its name. The name must be non-empty.
func NewSector(name string) (Sector, error) {
	s := Sector(name)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate returns an error if the sector has no name.
func (s Sector) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("sector")
	}
	return nil
}

// IsEmpty reports whether the sector denotes "no sector".
func (s Sector) IsEmpty() bool {
	return s == ""
}

// IsPCP reports whether the sector is the planning role.
func (s Sector) IsPCP() bool {
	return s == SectorPCP
}

// String returns the sector name.
func (s Sector) String() string {
	return string(s)
}

package models

// Component statuses with a fixed meaning. Any other string is a free-form
// lifecycle label.
const (
	StatusOperational = "Рабочий"
	StatusRetired     = "Списан"
)

// Seeded role identifiers
const (
	RoleAdmin uint = 1
	RoleUser  uint = 2
)

// IsRetired reports whether status denotes a decommissioned component
func IsRetired(status string) bool {
	return status == StatusRetired
}

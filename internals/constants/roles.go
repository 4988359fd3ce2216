package constants

import "fmt"

// Role diputuskan sekali saat login dan dibawa eksplisit di JWT claim.
const (
	RolePerawat = "perawat" // perawat pelaksana (pengisi supervisi)
	RoleKepala  = "kepala"  // kepala ruangan (administrator)
)

// Template pesan error role
const (
	ErrOnlyKepalaCanAccess  = "❌ Hanya kepala ruangan yang boleh mengakses fitur %s."
	ErrOnlyPerawatCanAccess = "❌ Hanya perawat yang boleh mengakses fitur %s."
)

func RoleErrorKepala(feature string) string {
	return fmt.Sprintf(ErrOnlyKepalaCanAccess, feature)
}

func RoleErrorPerawat(feature string) string {
	return fmt.Sprintf(ErrOnlyPerawatCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RolePerawat,
		RoleKepala,
	}

	KepalaOnly = []string{
		RoleKepala,
	}

	PerawatOnly = []string{
		RolePerawat,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// internal/app/system/activitycsv/limits.go
package activitycsv

// Size and row limits for catalog loading.
const (
	MaxCatalogSize = 5 << 20 // 5 MB
	MaxRows        = 20000
	MaxLineLength  = 1 << 20 // 1 MB; longer lines are dropped

	// rawPreview is how much of an overlong line RowError.Raw keeps.
	rawPreview = 120
)

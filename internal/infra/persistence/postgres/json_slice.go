package postgres

import "gorm.io/datatypes"

// stringSlice converts a possibly nil slice into a JSON column value that never stores null.
func stringSlice(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}

	return datatypes.JSONSlice[string](values)
}

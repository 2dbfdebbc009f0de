package handlers

import "gorm.io/gorm"

// studentProjection is the one join helper every enriched endpoint goes
// through: a Preload scope that fetches the referenced students in a
// single batched query, selecting only the listed columns. Keeping the
// projection list here stops the per-endpoint field sets from drifting.
func studentProjection(fields ...string) func(*gorm.DB) *gorm.DB {
	cols := append([]string{"id"}, fields...)
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(cols)
	}
}

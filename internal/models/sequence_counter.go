package models

// SequenceCounter backs the DB-based sequence allocator: a single named
// row whose Value only ever moves forward.
type SequenceCounter struct {
	Name  string `gorm:"size:50;primaryKey" json:"name"`
	Value int64  `gorm:"not null" json:"value"`
}

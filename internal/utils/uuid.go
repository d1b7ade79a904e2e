package utils

import "github.com/google/uuid"

// UUIDGenerator produces collision-resistant identifiers for stored upload
// filenames. V7 identifiers are preferred for their time-ordered prefix.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

package models

import (
	"fmt"
	"strings"
	"time"
)

// UnknownName is used for animals whose card has no name.
const UnknownName = "Unknown"

// Gender is canonical animal gender.
type Gender string

// Gender values.
const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// AgeCategory is canonical animal age category.
type AgeCategory string

// AgeCategory values.
const (
	AgeKitten  AgeCategory = "kitten"
	AgeYoung   AgeCategory = "young"
	AgeAdult   AgeCategory = "adult"
	AgeSenior  AgeCategory = "senior"
	AgeUnknown AgeCategory = "unknown"
)

// DedupPolicy decides what happens with animals which already exist in storage.
type DedupPolicy string

// DedupPolicy values.
const (
	// PolicySkip skips animals which already exist.
	PolicySkip DedupPolicy = "skip"
	// PolicyOverwrite updates scraped fields of animals which already exist.
	PolicyOverwrite DedupPolicy = "overwrite"
	// PolicyRefresh deletes all animals of the shelter before inserting scraped ones.
	PolicyRefresh DedupPolicy = "refresh"
)

// ParseDedupPolicy returns DedupPolicy matching s or error if there is none.
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch p := DedupPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicySkip, PolicyOverwrite, PolicyRefresh:
		return p, nil
	default:
		return "", fmt.Errorf("unknown dedup policy %q", s)
	}
}

// CardRecord is animal summary scraped from listing page card.
type CardRecord struct {
	Name       *string
	GenderHint *string
	AgeHint    *string
	ImageURL   *string
	DetailURL  string
}

// CardResult contains card record with extraction error if there is any.
type CardResult struct {
	Card  CardRecord
	Error error
}

// DetailRecord is animal information scraped from detail page.
type DetailRecord struct {
	Description   *string
	GenderText    *string
	AgeText       *string
	BirthDateText *string
}

// Draft is card record enriched with detail record.
type Draft struct {
	Name          string
	CardGender    *string
	CardAge       *string
	GenderText    *string
	AgeText       *string
	BirthDateText *string
	Description   *string
	ImageURL      *string
	SourceURL     string
}

// Shelter is shelter model.
type Shelter struct {
	ID          int
	Name        string
	Address     string
	Description string
	Website     string
	CreatedAt   time.Time
}

// Animal is animal model.
type Animal struct {
	ID          int
	ShelterID   int
	Name        string
	Gender      Gender
	AgeCategory AgeCategory
	BirthDate   *time.Time
	Description string
	ImageURL    *string
	SourceURL   string
	IsAdopted   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Summary contains ingestion run statistics.
type Summary struct {
	Found   int32
	Created int32
	Updated int32
	Skipped int32
	Failed  int32
	Deleted int32
}

// Persisted returns number of created and updated animals.
func (s Summary) Persisted() int32 {
	return s.Created + s.Updated
}

// Run is ingestion run model.
type Run struct {
	ID            int
	Site          string
	Policy        DedupPolicy
	CreatedAt     time.Time
	FinishedAt    *time.Time
	IsSuccess     *bool
	StatusMessage *string
	Summary       Summary
}

/* models.go
 * This file contains the structs and helper functions that relate to DB objects. Each record struct
 * maps one document in its collection; the hierarchy is linked through the *_id reference fields
 */

package store

import (
	"time"

	"trial-manager/api/shared"
)

// TrialDate is one entry in the derived trial_dates summary stored on the
// trial document, kept in day order
type TrialDate struct {
	DayNumber int    `bson:"dayNumber" json:"dayNumber"`
	Date      string `bson:"date" json:"date"`
}

// TrialRecord is the way a trial is stored in the trials collection
type TrialRecord struct {
	Id               string                  `bson:"_id"`
	ClubName         string                  `bson:"club_name"`
	SecretaryName    string                  `bson:"secretary_name"`
	CreatedBy        string                  `bson:"created_by"`
	TrialDates       []TrialDate             `bson:"trial_dates"`
	FeeConfiguration shared.FeeConfiguration `bson:"fee_configuration"`
	Status           string                  `bson:"status"`
	CreatedAt        time.Time               `bson:"created_at"`
	UpdatedAt        time.Time               `bson:"updated_at"`
}

// DayRecord is the way a trial day is stored in the trial_days collection
type DayRecord struct {
	Id        string `bson:"_id"`
	TrialId   string `bson:"trial_id"`
	DayNumber int    `bson:"day_number"`
	TrialDate string `bson:"trial_date"`
}

// ClassRecord is the way a class is stored in the trial_classes collection.
// ClassName carries the encoded name, e.g. "Games 1 (GB)"
type ClassRecord struct {
	Id         string `bson:"_id"`
	TrialDayId string `bson:"trial_day_id"`
	ClassName  string `bson:"class_name"`
	ClassOrder int    `bson:"class_order"`
}

// RoundRecord is the way a round is stored in the trial_rounds collection
type RoundRecord struct {
	Id           string `bson:"_id"`
	TrialClassId string `bson:"trial_class_id"`
	RoundNumber  int    `bson:"round_number"`
	JudgeName    string `bson:"judge_name"`
	FEOAvailable bool   `bson:"feo_available"`
}

// TrialSummary is the listing shape returned for a user's trials, newest first
type TrialSummary struct {
	Id            string      `json:"id"`
	ClubName      string      `json:"clubName"`
	SecretaryName string      `json:"secretaryName"`
	Status        string      `json:"status"`
	TrialDates    []TrialDate `json:"trialDates"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// deriveTrialDates builds the trial_dates summary from the hierarchy, with
// day numbers renumbered to the contiguous 1-based save order
func deriveTrialDates(days []shared.Day) []TrialDate {
	dates := make([]TrialDate, 0, len(days))
	for i, day := range days {
		dates = append(dates, TrialDate{DayNumber: i + 1, Date: day.Date})
	}
	return dates
}

// toSummary converts a stored trial record to its listing shape
func toSummary(rec TrialRecord) TrialSummary {
	return TrialSummary{
		Id:            rec.Id,
		ClubName:      rec.ClubName,
		SecretaryName: rec.SecretaryName,
		Status:        rec.Status,
		TrialDates:    rec.TrialDates,
		CreatedAt:     rec.CreatedAt,
	}
}

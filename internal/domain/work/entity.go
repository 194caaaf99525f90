package work

import (
	"time"
)

// DayType classifies a calendar date.
type DayType string

const (
	DayTypeWorkday         DayType = "WORKDAY"
	DayTypeSaturday        DayType = "SATURDAY"
	DayTypeSunday          DayType = "SUNDAY"
	DayTypeNationalHoliday DayType = "NATIONAL_HOLIDAY"
)

// WorkType classifies how a block of hours was spent.
type WorkType string

const (
	WorkTypeNone       WorkType = "NONE"
	WorkTypeWork       WorkType = "WORK"
	WorkTypeHoliday    WorkType = "HOLIDAY"
	WorkTypeSickDay    WorkType = "SICKDAY"
	WorkTypeSickness   WorkType = "SICKNESS"
	WorkTypeTrip       WorkType = "TRIP"
	WorkTypeHomeOffice WorkType = "HOMEOFFICE"
	WorkTypeTimeOff    WorkType = "TIMEOFF"
	WorkTypePaidLeave  WorkType = "PAID_LEAVE"
)

// WorkTypes lists every work type in declaration order. Monthly sums are
// emitted in this order so output never depends on map iteration.
var WorkTypes = []WorkType{
	WorkTypeNone,
	WorkTypeWork,
	WorkTypeHoliday,
	WorkTypeSickDay,
	WorkTypeSickness,
	WorkTypeTrip,
	WorkTypeHomeOffice,
	WorkTypeTimeOff,
	WorkTypePaidLeave,
}

// Valid reports whether t is a member of the closed work type enum.
func (t WorkType) Valid() bool {
	for _, known := range WorkTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CountsTowardBalance reports whether hours of this type are
// worked-equivalent for the monthly balance.
func (t WorkType) CountsTowardBalance() bool {
	return t == WorkTypeHoliday || t == WorkTypePaidLeave
}

// WorkEntry is the persisted manual classification of one user-day.
// Created lazily on first read of a workday, mutated by explicit edits and
// by the past-day auto-backfill; deleted only by an edit that clears every
// field.
type WorkEntry struct {
	ID          int64
	Date        time.Time
	Username    string
	Hours       *float64
	WorkType    WorkType
	Hours2      *float64
	WorkType2   WorkType
	DayType     DayType
	Description string
}

// Empty reports whether the entry carries no classification at all.
// An edit producing an empty entry deletes the row.
func (e WorkEntry) Empty() bool {
	return e.Hours == nil && e.Hours2 == nil &&
		(e.WorkType == WorkTypeNone || e.WorkType == "") &&
		(e.WorkType2 == WorkTypeNone || e.WorkType2 == "") &&
		e.Description == ""
}

// Unclassified reports whether the entry still has no real value, which is
// the guard that keeps the past-day auto-backfill from running twice.
func (e WorkEntry) Unclassified() bool {
	return e.Description == "" &&
		(e.WorkType == WorkTypeNone || e.WorkType == "") &&
		(e.WorkType2 == WorkTypeNone || e.WorkType2 == "")
}

package business

import (
	"strings"
	"time"
)

// SlotAvailability is the booking state of one schedule day.
type SlotAvailability string

const (
	SlotAvailable SlotAvailability = "available"
	SlotBusy      SlotAvailability = "busy"
	SlotBooked    SlotAvailability = "booked"
)

// ScheduleDay is one entry in the rolling schedule included in prompts.
type ScheduleDay struct {
	Date         string           `json:"date"`
	Area         string           `json:"area"`
	Availability SlotAvailability `json:"availability"`
	Notes        string           `json:"notes,omitempty"`
}

var areaRotation = map[time.Weekday]string{
	time.Monday:    "Bath & Keynsham area",
	time.Tuesday:   "Bristol area",
	time.Wednesday: "Paulton & Midsomer Norton area",
	time.Thursday:  "Radstock & Peasedown area",
	time.Friday:    "Chew Valley area",
	time.Saturday:  "Bath area",
}

// Schedule generates the next 14 days of indicative availability starting
// from the given day. Sundays are skipped; the first weekdays are busy and
// Saturdays open up in the second week.
func Schedule(from time.Time) []ScheduleDay {
	var days []ScheduleDay

	for i := 0; i < 14; i++ {
		date := from.AddDate(0, 0, i)
		if date.Weekday() == time.Sunday {
			continue
		}

		day := ScheduleDay{
			Date: date.Format("2006-01-02"),
			Area: areaForDay(date.Weekday()),
		}

		switch {
		case date.Weekday() == time.Saturday:
			if i < 7 {
				day.Availability = SlotBooked
			} else {
				day.Availability = SlotAvailable
			}
			day.Area = "Bath area"
			day.Notes = "Saturday slots available for larger jobs"
		case i < 3:
			day.Availability = SlotBusy
			day.Notes = "Limited availability"
		default:
			day.Availability = SlotAvailable
		}

		days = append(days, day)
	}

	return days
}

func areaForDay(weekday time.Weekday) string {
	if area, ok := areaRotation[weekday]; ok {
		return area
	}
	return "Various areas"
}

// AvailabilityForArea returns up to limit available days covering the area.
func AvailabilityForArea(from time.Time, area string, limit int) []ScheduleDay {
	if limit <= 0 {
		limit = 7
	}

	var matched []ScheduleDay
	for _, day := range Schedule(from) {
		if day.Availability != SlotAvailable {
			continue
		}
		if !strings.Contains(strings.ToLower(day.Area), strings.ToLower(area)) {
			continue
		}
		matched = append(matched, day)
		if len(matched) == limit {
			break
		}
	}
	return matched
}

// NextAvailableDate returns the first available date, or "" when fully booked.
func NextAvailableDate(from time.Time) string {
	for _, day := range Schedule(from) {
		if day.Availability == SlotAvailable {
			return day.Date
		}
	}
	return ""
}

package business

import "strings"

// Service describes one service the company offers.
type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ContactInfo holds the public contact details quoted in customer replies.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// Availability describes working hours and weather caveats.
type Availability struct {
	GeneralAvailability string `json:"generalAvailability"`
	SpecialNotes        string `json:"specialNotes"`
}

// Policies holds payment and cancellation terms.
type Policies struct {
	PaymentMethods     []string `json:"paymentMethods"`
	CancellationPolicy string   `json:"cancellationPolicy"`
	WeatherPolicy      string   `json:"weatherPolicy"`
}

// Context is the static business profile included in every generation prompt.
type Context struct {
	ServiceAreas []string     `json:"serviceAreas"`
	Services     []Service    `json:"services"`
	Availability Availability `json:"availability"`
	ContactInfo  ContactInfo  `json:"contactInfo"`
	Policies     Policies     `json:"policies"`
}

// AreaCoverage reports whether an area falls inside the service footprint.
type AreaCoverage struct {
	Covered bool
	Notes   string
}

// GetContext returns the Somerset Window Cleaning business profile.
func GetContext() Context {
	return Context{
		ServiceAreas: []string{
			"Bath",
			"Bristol",
			"Keynsham",
			"Saltford",
			"Paulton",
			"Midsomer Norton",
			"Radstock",
			"Peasedown St John",
			"Timsbury",
			"Farmborough",
			"High Littleton",
			"Clutton",
			"Temple Cloud",
			"Chew Valley",
			"Pensford",
			"Whitchurch",
			"Compton Dando",
			"Marksbury",
		},
		Services: []Service{
			{Name: "Window Cleaning", Description: "Professional exterior and interior window cleaning for residential and commercial properties"},
			{Name: "Gutter Cleaning", Description: "Complete gutter cleaning and maintenance service"},
			{Name: "Pressure Washing", Description: "High-pressure cleaning for driveways, patios, decking, and building exteriors"},
			{Name: "Conservatory Cleaning", Description: "Specialist cleaning for conservatory roofs and windows"},
			{Name: "Solar Panel Cleaning", Description: "Safe and effective solar panel cleaning to maintain efficiency"},
			{Name: "Commercial Window Cleaning", Description: "Regular contract cleaning for offices, shops, and commercial buildings"},
		},
		Availability: Availability{
			GeneralAvailability: "We typically work Monday to Friday, 8am-5pm, with some Saturday availability for larger jobs",
			SpecialNotes:        "Weather dependent - we may reschedule during heavy rain or high winds for safety",
		},
		ContactInfo: ContactInfo{
			Phone:   "07123 456789",
			Email:   "info@somersetwindowcleaning.co.uk",
			Website: "www.somersetwindowcleaning.co.uk",
		},
		Policies: Policies{
			PaymentMethods:     []string{"Cash", "Bank Transfer", "Card Payment"},
			CancellationPolicy: "24 hours notice required for cancellations",
			WeatherPolicy:      "Services may be rescheduled due to adverse weather conditions for safety reasons",
		},
	}
}

// MentionAreas is the gazetteer used when scanning free text for mentioned
// locations. It is deliberately shorter than ServiceAreas and includes the
// postcode districts customers quote in messages.
func MentionAreas() []string {
	return []string{
		"Bath",
		"Bristol",
		"Keynsham",
		"Saltford",
		"Paulton",
		"Weston-super-Mare",
		"BS23",
		"BS22",
		"BS24",
	}
}

// LookupAreaCoverage reports whether the given area is serviced.
func LookupAreaCoverage(area string) AreaCoverage {
	ctx := GetContext()

	for _, serviced := range ctx.ServiceAreas {
		if strings.EqualFold(serviced, area) {
			return AreaCoverage{
				Covered: true,
				Notes:   "We provide regular service to " + area + " and surrounding areas",
			}
		}
	}

	// Partial overlap with a serviced area still counts as covered.
	lower := strings.ToLower(area)
	for _, serviced := range ctx.ServiceAreas {
		servicedLower := strings.ToLower(serviced)
		if strings.Contains(lower, servicedLower) || strings.Contains(servicedLower, lower) {
			return AreaCoverage{
				Covered: true,
				Notes:   area + " is covered as part of our " + serviced + " service area",
			}
		}
	}

	return AreaCoverage{
		Covered: false,
		Notes:   area + " is outside our current service areas. Please contact us to discuss special arrangements",
	}
}

// LookupService finds a service by (partial, case-insensitive) name.
func LookupService(name string) (Service, bool) {
	for _, svc := range GetContext().Services {
		if strings.Contains(strings.ToLower(svc.Name), strings.ToLower(name)) {
			return svc, true
		}
	}
	return Service{}, false
}

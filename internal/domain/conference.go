package domain

import "context"

// Track is one entry of the conference track catalog.
// swagger:model Track
type Track struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Venue is where the conference takes place.
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Hotel is a partner hotel with a negotiated rate.
type Hotel struct {
	Name        string `json:"name"`
	Rate        string `json:"rate"`
	Dates       string `json:"dates,omitempty"`
	GroupCode   string `json:"groupCode,omitempty"`
	BookingLink string `json:"bookingLink"`
}

// ConferenceStats holds headline attendance figures.
type ConferenceStats struct {
	Attendees     string   `json:"attendees"`
	AttendeeTypes []string `json:"attendeeTypes"`
	Talks         string   `json:"talks"`
	Workshops     string   `json:"workshops"`
	Exhibitors    string   `json:"exhibitors"`
}

// ConferenceLinks are the public links of the conference.
type ConferenceLinks struct {
	Tickets    string `json:"tickets"`
	Talks      string `json:"talks"`
	Newsletter string `json:"newsletter"`
	Twitter    string `json:"twitter"`
	YouTube    string `json:"youtube"`
	CFP        string `json:"cfp"`
}

// ConferenceInfo is the static description of the conference.
// swagger:model ConferenceInfo
type ConferenceInfo struct {
	Title       string          `json:"title"`
	Date        string          `json:"date"`
	Location    string          `json:"location"`
	Venue       Venue           `json:"venue"`
	Hotels      []Hotel         `json:"hotels"`
	Stats       ConferenceStats `json:"stats"`
	Links       ConferenceLinks `json:"links"`
	Description string          `json:"description"`
}

// ConferenceDetailsFetcher fetches the public plain-text conference document.
type ConferenceDetailsFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

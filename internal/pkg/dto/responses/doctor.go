package responses

type DoctorProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Photo          string   `json:"photo,omitempty"`
	TicketPrice    int64    `json:"ticketPrice"`
	Specialization string   `json:"specialization,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`
	Experiences    []string `json:"experiences,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	About          string   `json:"about,omitempty"`
	TimeSlots      []string `json:"timeSlots,omitempty"`
	AverageRating  float64  `json:"averageRating"`
	TotalRating    int      `json:"totalRating"`
	IsApproved     bool     `json:"isApproved"`
}

package requests

type UpdateDoctorProfile struct {
	Name           string   `json:"name,omitempty" validate:"omitempty,min=2,max=60"`
	Phone          string   `json:"phone,omitempty"`
	TicketPrice    int64    `json:"ticketPrice,omitempty" validate:"omitempty,gte=0"`
	Specialization string   `json:"specialization,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`
	Experiences    []string `json:"experiences,omitempty"`
	Bio            string   `json:"bio,omitempty" validate:"omitempty,max=120"`
	About          string   `json:"about,omitempty"`
	TimeSlots      []string `json:"timeSlots,omitempty"`

	ProfilePicture          string `json:"photo,omitempty"`
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}

type ListDoctors struct {
	Query string `json:"query,omitempty"`
}

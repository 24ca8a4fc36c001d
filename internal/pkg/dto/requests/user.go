package requests

type UpdateProfile struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=2,max=60"`
	Phone     string `json:"phone,omitempty"`
	Gender    string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	BloodType string `json:"bloodType,omitempty"`

	// Base64-encoded image; decoded bytes and extension are filled by the
	// controller before the usecase runs.
	ProfilePicture          string `json:"photo,omitempty"`
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}

package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Name      string `bson:"name"`
	Phone     string `bson:"phone,omitempty"`
	Photo     string `bson:"photo,omitempty"`
	Role      string `bson:"role"`
	Gender    string `bson:"gender,omitempty"`
	BloodType string `bson:"bloodType,omitempty"`
	TimeModel `bson:",inline"`
}

package models

import "time"

// Inquiry is a course inquiry submitted through the public site.
// Status is a free-text label managed by admins; new inquiries start as "new".
type Inquiry struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email" bson:"email"`
	Course    string    `json:"course" bson:"course"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	Status    string    `json:"status" bson:"status"`
}

// User is a registered site account. The password is stored as given;
// login compares raw values. Hashing is a known gap, not a goal here.
type User struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	Password  string    `json:"password" bson:"password"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the reduced view returned by register/login responses.
// Password and phone are never serialized back to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Vacancy is a job opening listed on the careers page.
type Vacancy struct {
	ID          string `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Location    string `json:"location" bson:"location"`
	Type        string `json:"type" bson:"type"`
	Description string `json:"desc" bson:"desc"`
}

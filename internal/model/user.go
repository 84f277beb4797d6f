package model

// User is an account row. Users are provisioned out of band; this service
// only reads them.
type User struct {
	ID       uint   `gorm:"primaryKey" yaml:"id"`
	Email    string `gorm:"size:120;not null;uniqueIndex" yaml:"email"`
	Password string `gorm:"size:80;not null" yaml:"password"`
	IsActive bool   `gorm:"not null;default:false" yaml:"is_active"`
}

// UserResponse is the public shape of a User. The password never leaves the
// database.
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func (u User) Serialize() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

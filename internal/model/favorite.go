package model

import "time"

// Favorite links a user to either a character or a planet.
//
// Exactly one of CharacterID and PlanetID is set, enforced by the
// favorites_single_target check on both backends. The composite unique
// indexes stop a user from holding the same favorite twice; NULLs compare
// distinct, so character favorites never collide with planet favorites.
// user_id carries no foreign key: requests act as a fixed user that may not
// be provisioned.
type Favorite struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_favorites_user_character;uniqueIndex:idx_favorites_user_planet"`
	CharacterID *uint     `gorm:"uniqueIndex:idx_favorites_user_character"`
	PlanetID    *uint     `gorm:"uniqueIndex:idx_favorites_user_planet;check:favorites_single_target,(character_id IS NULL) <> (planet_id IS NULL)"`
	CreatedAt   time.Time `gorm:"not null"`

	Character *Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
}

type FavoriteResponse struct {
	ID          uint  `json:"id"`
	UserID      uint  `json:"user_id"`
	CharacterID *uint `json:"character_id"`
	PlanetID    *uint `json:"planet_id"`
}

func (f Favorite) Serialize() FavoriteResponse {
	return FavoriteResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		CharacterID: f.CharacterID,
		PlanetID:    f.PlanetID,
	}
}

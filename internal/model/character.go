package model

// Character is a person from the catalog ("people" on the wire).
type Character struct {
	ID        uint   `gorm:"primaryKey" yaml:"id"`
	Name      string `gorm:"size:120;not null" yaml:"name"`
	Gender    string `gorm:"size:40" yaml:"gender"`
	BirthYear string `gorm:"size:40" yaml:"birth_year"`
	Height    string `gorm:"size:40" yaml:"height"`
	Mass      string `gorm:"size:40" yaml:"mass"`
	HairColor string `gorm:"size:40" yaml:"hair_color"`
	EyeColor  string `gorm:"size:40" yaml:"eye_color"`
	SkinColor string `gorm:"size:40" yaml:"skin_color"`
}

type CharacterResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthYear string `json:"birth_year"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	HairColor string `json:"hair_color"`
	EyeColor  string `json:"eye_color"`
	SkinColor string `json:"skin_color"`
}

func (c Character) Serialize() CharacterResponse {
	return CharacterResponse{
		ID:        c.ID,
		Name:      c.Name,
		Gender:    c.Gender,
		BirthYear: c.BirthYear,
		Height:    c.Height,
		Mass:      c.Mass,
		HairColor: c.HairColor,
		EyeColor:  c.EyeColor,
		SkinColor: c.SkinColor,
	}
}

package model

type Planet struct {
	ID             uint   `gorm:"primaryKey" yaml:"id"`
	Name           string `gorm:"size:120;not null" yaml:"name"`
	Climate        string `gorm:"size:80" yaml:"climate"`
	Terrain        string `gorm:"size:80" yaml:"terrain"`
	Population     string `gorm:"size:40" yaml:"population"`
	Diameter       string `gorm:"size:40" yaml:"diameter"`
	RotationPeriod string `gorm:"size:40" yaml:"rotation_period"`
	OrbitalPeriod  string `gorm:"size:40" yaml:"orbital_period"`
	Gravity        string `gorm:"size:40" yaml:"gravity"`
}

type PlanetResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Climate        string `json:"climate"`
	Terrain        string `json:"terrain"`
	Population     string `json:"population"`
	Diameter       string `json:"diameter"`
	RotationPeriod string `json:"rotation_period"`
	OrbitalPeriod  string `json:"orbital_period"`
	Gravity        string `json:"gravity"`
}

func (p Planet) Serialize() PlanetResponse {
	return PlanetResponse{
		ID:             p.ID,
		Name:           p.Name,
		Climate:        p.Climate,
		Terrain:        p.Terrain,
		Population:     p.Population,
		Diameter:       p.Diameter,
		RotationPeriod: p.RotationPeriod,
		OrbitalPeriod:  p.OrbitalPeriod,
		Gravity:        p.Gravity,
	}
}

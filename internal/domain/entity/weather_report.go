package entity

// WeatherReport is the current condition of one city as shown to the user.
type WeatherReport struct {
	City        string `json:"city"`
	Description string `json:"description"`
}

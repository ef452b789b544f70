package model

// Greeting holds the values bound from the "greeting" configuration prefix.
// It is populated once at startup and only read afterwards.
type Greeting struct {
	Name   string `mapstructure:"name" json:"name"`
	Coffee string `mapstructure:"coffee" json:"coffee"`
}

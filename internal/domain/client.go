package domain

type Client struct {
	ID         int    `json:"id" mapstructure:"id"`
	RegisterID string `json:"registerId,omitempty" mapstructure:"registerId"`
	Name       string `json:"name" mapstructure:"name"`
	Age        int    `json:"age" mapstructure:"age"`
	Phone      string `json:"phone" mapstructure:"phone"`
	Email      string `json:"email" mapstructure:"email"`
	Address    string `json:"address" mapstructure:"address"`
	City       string `json:"city" mapstructure:"city"`
	ZipCode    string `json:"zipCode" mapstructure:"zipCode"`
	Country    string `json:"country" mapstructure:"country"`
}

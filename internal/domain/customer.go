package domain

import "time"

// Customer — клиент сервиса.
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerInput — данные для создания/полной замены клиента.
type CustomerInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (in *CustomerInput) Apply(c *Customer) {
	c.Name = in.Name
	c.Email = in.Email
	c.PhoneNumber = in.PhoneNumber
	c.Address = in.Address
}

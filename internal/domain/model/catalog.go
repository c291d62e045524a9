package model

// Category groups products.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// Provider is a product supplier.
type Provider struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
	IsActive      bool   `json:"is_active"`
}

// Client is a registered customer.
type Client struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Birthday    string `json:"birthday"`
	IsActive    bool   `json:"is_active"`
}

// User is a system account as exposed by the backend's user admin.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups"`
	IsActive bool     `json:"is_active"`
}

// Group is a backend permission group.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

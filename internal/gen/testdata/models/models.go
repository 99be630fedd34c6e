package models

import "time"

type Audit struct {
	CreatedBy string `json:"createdBy"`
}

type Address struct {
	City    string `json:"city"`
	ZipCode string `fluentval:"name=zip"`
}

type Node struct {
	Value string `json:"value"`
	Next  *Node  `json:"next"`
}

type User struct {
	Audit
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Address  Address   `json:"address"`
	Billing  *Address  `json:"billing"`
	Tags     []string  `json:"tags"`
	Joined   time.Time `json:"joined"`
	Internal string    `json:"-"`
	Note     string
	secret   string
}

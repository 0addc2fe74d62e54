package model

// TechRecord is one row of the tech radar. Field order drives the JSON key order.
type TechRecord struct {
	Name       string `json:"Name"`
	Status     string `json:"Status"`
	Category   string `json:"Category"`
	Dependency string `json:"Dependency"`
	Mentor     string `json:"Mentor"`
}

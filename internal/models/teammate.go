package models

// SocialHandles is the fixed set of social network URLs shown on a profile.
// Every key is serialized even when empty so the front-end can bind without
// existence checks.
type SocialHandles struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	TikTok    string `json:"tiktok"`
}

// Links is the fixed set of call-to-action URLs on a profile.
type Links struct {
	Apply        string `json:"apply"`
	Calendly     string `json:"calendly"`
	LinkedIn     string `json:"linkedin"`
	Reviews      string `json:"reviews"`
	PersonalSite string `json:"personalSite"`
}

// Teammate is the canonical profile record. Slug is the primary key and is
// immutable once the record exists; updates and deletes address records by
// slug. Order drives display ordering, null sorts last.
type Teammate struct {
	Order          *float64      `json:"order"`
	Slug           string        `json:"slug" validate:"required"`
	Name           string        `json:"name" validate:"required"`
	Role           string        `json:"role"`
	JobTitle       string        `json:"jobTitle"`
	NMLS           string        `json:"nmls"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	PhotoFile      string        `json:"photoFile"`
	Location       string        `json:"location"`
	Bio            string        `json:"bio"`
	Specialties    []string      `json:"specialties"`
	Certifications []string      `json:"certifications"`
	Languages      []string      `json:"languages"`
	HireDate       string        `json:"hireDate"`
	FunFact        string        `json:"funFact"`
	SocialHandles  SocialHandles `json:"socialHandles"`
	States         []string      `json:"states"`
	Links          Links         `json:"links"`
}

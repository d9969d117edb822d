package service

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
)

// FlexList decodes a list-typed field from any of the shapes callers send:
// a native JSON array, a JSON-encoded array string, or a comma-separated
// string, tried in that preference order. Elements are trimmed and empties
// dropped; order is preserved.
type FlexList []string

func (l *FlexList) UnmarshalJSON(data []byte) error {
	var arr []interface{}
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = cleanList(stringifyAll(arr))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = ParseList(s)
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*l = FlexList{}
		return nil
	}
	*l = ParseList(fmt.Sprint(v))
	return nil
}

// FlexMap decodes a mapping-typed field sent either as a nested object or a
// JSON-encoded object string. Anything else collapses to an empty map; the
// normalizer supplies the fixed key set.
type FlexMap map[string]string

func (m *FlexMap) UnmarshalJSON(data []byte) error {
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err == nil {
		*m = stringifyMap(obj)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		var nested map[string]interface{}
		if err := json.Unmarshal([]byte(s), &nested); err == nil {
			*m = stringifyMap(nested)
			return nil
		}
	}

	*m = FlexMap{}
	return nil
}

// FlexNumber decodes the order field, which arrives as a JSON number, a
// numeric string, or an empty string meaning "no explicit order". Present
// records whether the key appeared at all, which the update merge relies on.
type FlexNumber struct {
	Present bool
	Valid   bool
	Value   float64
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	n.Present = true

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Valid = true
		n.Value = f
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		n.Valid = true
		n.Value = parsed
		return nil
	}

	// null and anything non-numeric mean "no order"
	return nil
}

func parseFlexNumber(raw string) FlexNumber {
	n := FlexNumber{Present: true}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return n
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return n
	}
	n.Valid = true
	n.Value = parsed
	return n
}

// TeammateInput is the loosely typed payload accepted by create and update.
// Pointer fields distinguish "absent" from "present but empty" so updates
// can merge onto the stored record. The flattened link and social fields
// mirror the flat form layout the admin page submits.
type TeammateInput struct {
	Order          FlexNumber `json:"order"`
	Slug           *string    `json:"slug"`
	Name           *string    `json:"name"`
	Role           *string    `json:"role"`
	JobTitle       *string    `json:"jobTitle"`
	NMLS           *string    `json:"nmls"`
	Phone          *string    `json:"phone"`
	Email          *string    `json:"email"`
	PhotoFile      *string    `json:"photoFile"`
	Location       *string    `json:"location"`
	Bio            *string    `json:"bio"`
	Specialties    *FlexList  `json:"specialties"`
	Certifications *FlexList  `json:"certifications"`
	Languages      *FlexList  `json:"languages"`
	HireDate       *string    `json:"hireDate"`
	FunFact        *string    `json:"funFact"`
	SocialHandles  *FlexMap   `json:"socialHandles"`
	States         *FlexList  `json:"states"`
	Links          *FlexMap   `json:"links"`

	Apply        *string `json:"apply"`
	Calendly     *string `json:"calendly"`
	LinkedIn     *string `json:"linkedin"`
	Reviews      *string `json:"reviews"`
	PersonalSite *string `json:"personalSite"`

	Facebook       *string `json:"facebook"`
	Instagram      *string `json:"instagram"`
	SocialLinkedIn *string `json:"socialLinkedin"`
	Twitter        *string `json:"twitter"`
	TikTok         *string `json:"tiktok"`
}

// InputFromValues builds a TeammateInput from decoded form values, applying
// the same representation fallbacks as the JSON path.
func InputFromValues(values url.Values) TeammateInput {
	input := TeammateInput{}

	if values.Has("order") {
		input.Order = parseFlexNumber(values.Get("order"))
	}

	input.Slug = formString(values, "slug")
	input.Name = formString(values, "name")
	input.Role = formString(values, "role")
	input.JobTitle = formString(values, "jobTitle")
	input.NMLS = formString(values, "nmls")
	input.Phone = formString(values, "phone")
	input.Email = formString(values, "email")
	input.PhotoFile = formString(values, "photoFile")
	input.Location = formString(values, "location")
	input.Bio = formString(values, "bio")
	input.HireDate = formString(values, "hireDate")
	input.FunFact = formString(values, "funFact")

	input.Specialties = formList(values, "specialties")
	input.Certifications = formList(values, "certifications")
	input.Languages = formList(values, "languages")
	input.States = formList(values, "states")

	input.SocialHandles = formMap(values, "socialHandles")
	input.Links = formMap(values, "links")

	input.Apply = formString(values, "apply")
	input.Calendly = formString(values, "calendly")
	input.LinkedIn = formString(values, "linkedin")
	input.Reviews = formString(values, "reviews")
	input.PersonalSite = formString(values, "personalSite")

	input.Facebook = formString(values, "facebook")
	input.Instagram = formString(values, "instagram")
	input.SocialLinkedIn = formString(values, "socialLinkedin")
	input.Twitter = formString(values, "twitter")
	input.TikTok = formString(values, "tiktok")

	return input
}

// inputFromRecord converts a stored record back into input form so an update
// payload can be merged over it before renormalizing.
func inputFromRecord(rec models.Teammate) TeammateInput {
	input := TeammateInput{
		Slug:      strPtr(rec.Slug),
		Name:      strPtr(rec.Name),
		Role:      strPtr(rec.Role),
		JobTitle:  strPtr(rec.JobTitle),
		NMLS:      strPtr(rec.NMLS),
		Phone:     strPtr(rec.Phone),
		Email:     strPtr(rec.Email),
		PhotoFile: strPtr(rec.PhotoFile),
		Location:  strPtr(rec.Location),
		Bio:       strPtr(rec.Bio),
		HireDate:  strPtr(rec.HireDate),
		FunFact:   strPtr(rec.FunFact),
	}

	input.Order = FlexNumber{Present: true}
	if rec.Order != nil {
		input.Order.Valid = true
		input.Order.Value = *rec.Order
	}

	input.Specialties = listPtr(rec.Specialties)
	input.Certifications = listPtr(rec.Certifications)
	input.Languages = listPtr(rec.Languages)
	input.States = listPtr(rec.States)

	input.SocialHandles = mapPtr(FlexMap{
		"facebook":  rec.SocialHandles.Facebook,
		"instagram": rec.SocialHandles.Instagram,
		"linkedin":  rec.SocialHandles.LinkedIn,
		"twitter":   rec.SocialHandles.Twitter,
		"tiktok":    rec.SocialHandles.TikTok,
	})
	input.Links = mapPtr(FlexMap{
		"apply":        rec.Links.Apply,
		"calendly":     rec.Links.Calendly,
		"linkedin":     rec.Links.LinkedIn,
		"reviews":      rec.Links.Reviews,
		"personalSite": rec.Links.PersonalSite,
	})

	return input
}

// mergedOver overlays the fields present in the receiver on top of base.
func (in TeammateInput) mergedOver(base TeammateInput) TeammateInput {
	out := base

	if in.Order.Present {
		out.Order = in.Order
	}
	out.Slug = pick(in.Slug, base.Slug)
	out.Name = pick(in.Name, base.Name)
	out.Role = pick(in.Role, base.Role)
	out.JobTitle = pick(in.JobTitle, base.JobTitle)
	out.NMLS = pick(in.NMLS, base.NMLS)
	out.Phone = pick(in.Phone, base.Phone)
	out.Email = pick(in.Email, base.Email)
	out.PhotoFile = pick(in.PhotoFile, base.PhotoFile)
	out.Location = pick(in.Location, base.Location)
	out.Bio = pick(in.Bio, base.Bio)
	out.HireDate = pick(in.HireDate, base.HireDate)
	out.FunFact = pick(in.FunFact, base.FunFact)

	if in.Specialties != nil {
		out.Specialties = in.Specialties
	}
	if in.Certifications != nil {
		out.Certifications = in.Certifications
	}
	if in.Languages != nil {
		out.Languages = in.Languages
	}
	if in.States != nil {
		out.States = in.States
	}
	if in.SocialHandles != nil {
		out.SocialHandles = in.SocialHandles
	}
	if in.Links != nil {
		out.Links = in.Links
	}

	out.Apply = pick(in.Apply, base.Apply)
	out.Calendly = pick(in.Calendly, base.Calendly)
	out.LinkedIn = pick(in.LinkedIn, base.LinkedIn)
	out.Reviews = pick(in.Reviews, base.Reviews)
	out.PersonalSite = pick(in.PersonalSite, base.PersonalSite)

	out.Facebook = pick(in.Facebook, base.Facebook)
	out.Instagram = pick(in.Instagram, base.Instagram)
	out.SocialLinkedIn = pick(in.SocialLinkedIn, base.SocialLinkedIn)
	out.Twitter = pick(in.Twitter, base.Twitter)
	out.TikTok = pick(in.TikTok, base.TikTok)

	return out
}

// ParseList coerces a raw string into a clean ordered list: a JSON-encoded
// array wins over comma splitting.
func ParseList(raw string) FlexList {
	if strings.TrimSpace(raw) == "" {
		return FlexList{}
	}

	var arr []interface{}
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return cleanList(stringifyAll(arr))
	}

	return cleanList(strings.Split(raw, ","))
}

func cleanList(items []string) FlexList {
	out := make(FlexList, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func stringifyAll(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(item))
	}
	return out
}

func stringifyMap(obj map[string]interface{}) FlexMap {
	out := make(FlexMap, len(obj))
	for key, value := range obj {
		if value == nil {
			out[key] = ""
			continue
		}
		if s, ok := value.(string); ok {
			out[key] = s
			continue
		}
		out[key] = fmt.Sprint(value)
	}
	return out
}

func formString(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

func formList(values url.Values, key string) *FlexList {
	if !values.Has(key) {
		return nil
	}
	list := ParseList(values.Get(key))
	return &list
}

func formMap(values url.Values, key string) *FlexMap {
	if !values.Has(key) {
		return nil
	}
	var m FlexMap
	var nested map[string]interface{}
	if err := json.Unmarshal([]byte(values.Get(key)), &nested); err == nil {
		m = stringifyMap(nested)
	} else {
		m = FlexMap{}
	}
	return &m
}

func strPtr(s string) *string {
	return &s
}

func listPtr(items []string) *FlexList {
	list := make(FlexList, len(items))
	copy(list, items)
	return &list
}

func mapPtr(m FlexMap) *FlexMap {
	return &m
}

func pick(preferred, fallback *string) *string {
	if preferred != nil {
		return preferred
	}
	return fallback
}

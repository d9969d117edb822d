package service

import (
	"path"
	"strings"

	"github.com/vinnynacc/teammate-directory-api/internal/models"
)

// uploadsPrefix is the storage-relative directory recorded in photoFile for
// uploaded photos; the server mounts it statically under the same name.
const uploadsPrefix = "uploads"

// Expand turns a loosely typed input into the canonical record shape without
// enforcing required fields. Every list comes out non-nil and every mapping
// carries its complete fixed key set. Pure transform, no I/O.
func Expand(input TeammateInput, storedPhoto string) models.Teammate {
	rec := models.Teammate{
		Slug:           strings.TrimSpace(deref(input.Slug)),
		Name:           strings.TrimSpace(deref(input.Name)),
		Role:           deref(input.Role),
		JobTitle:       deref(input.JobTitle),
		NMLS:           deref(input.NMLS),
		Phone:          deref(input.Phone),
		Email:          deref(input.Email),
		PhotoFile:      deref(input.PhotoFile),
		Location:       deref(input.Location),
		Bio:            deref(input.Bio),
		HireDate:       deref(input.HireDate),
		FunFact:        deref(input.FunFact),
		Specialties:    expandList(input.Specialties),
		Certifications: expandList(input.Certifications),
		Languages:      expandList(input.Languages),
		States:         expandList(input.States),
		SocialHandles:  expandSocialHandles(input),
		Links:          expandLinks(input),
	}

	if input.Order.Valid {
		value := input.Order.Value
		rec.Order = &value
	}

	// A stored upload always wins over whatever photoFile the payload sent.
	if storedPhoto != "" {
		rec.PhotoFile = path.Join(uploadsPrefix, storedPhoto)
	}

	return rec
}

func expandList(list *FlexList) []string {
	if list == nil {
		return []string{}
	}
	out := make([]string, 0, len(*list))
	for _, item := range *list {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// expandLinks merges the nested mapping, when sent, onto the fixed default
// key set; the flattened top-level fields only apply when the nested form is
// absent.
func expandLinks(input TeammateInput) models.Links {
	if input.Links != nil {
		m := *input.Links
		return models.Links{
			Apply:        m["apply"],
			Calendly:     m["calendly"],
			LinkedIn:     m["linkedin"],
			Reviews:      m["reviews"],
			PersonalSite: m["personalSite"],
		}
	}
	return models.Links{
		Apply:        deref(input.Apply),
		Calendly:     deref(input.Calendly),
		LinkedIn:     deref(input.LinkedIn),
		Reviews:      deref(input.Reviews),
		PersonalSite: deref(input.PersonalSite),
	}
}

func expandSocialHandles(input TeammateInput) models.SocialHandles {
	if input.SocialHandles != nil {
		m := *input.SocialHandles
		return models.SocialHandles{
			Facebook:  m["facebook"],
			Instagram: m["instagram"],
			LinkedIn:  m["linkedin"],
			Twitter:   m["twitter"],
			TikTok:    m["tiktok"],
		}
	}
	// The flat form reuses "linkedin" for the profile link, so the social
	// handle falls back to it only when no dedicated field was sent.
	linkedIn := input.SocialLinkedIn
	if linkedIn == nil {
		linkedIn = input.LinkedIn
	}
	return models.SocialHandles{
		Facebook:  deref(input.Facebook),
		Instagram: deref(input.Instagram),
		LinkedIn:  deref(linkedIn),
		Twitter:   deref(input.Twitter),
		TikTok:    deref(input.TikTok),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

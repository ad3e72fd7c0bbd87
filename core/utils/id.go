package utils

import (
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"yakjeong/core/constants"
)

func GenerateID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", constants.ShareSlugIDLength)
	if err != nil {
		return ""
	}
	return id
}

// ShareSlug builds the public share-link slug for a room. Titles are free
// text (often non-Latin), so the slugified part may be empty; the nanoid
// suffix keeps the slug unique either way.
func ShareSlug(title string) string {
	s := slug.Make(title)
	if s == "" {
		return GenerateID()
	}
	return s + "-" + GenerateID()
}

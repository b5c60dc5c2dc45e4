// Package interests computes the tag overlap between two profiles'
// onboarding answers. Pure functions, no side effects.
package interests

import (
	"fmt"
	"strings"

	"github.com/adityarizki/amora/internal/entity"
)

// sharedCap bounds the combined shared list shown on cards.
const sharedCap = 6

// Normalize trims and lower-cases every tag, dropping empties.
func Normalize(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// intersect returns the elements of a also present in b, preserving a's
// relative order.
func intersect(a, b []string) []string {
	out := []string{}
	if len(a) == 0 || len(b) == 0 {
		return out
	}
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	for _, t := range a {
		if _, ok := set[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Compute intersects the two profiles per category. The combined shared list
// is music first, then hobbies, then passions, capped at six entries; the
// count is the sum of the per-category intersection sizes.
func Compute(mine, theirs entity.ProfileQuestions) entity.MutualInterests {
	music := intersect(Normalize(mine.MusicGenres), Normalize(theirs.MusicGenres))
	hobbies := intersect(Normalize(mine.Hobbies), Normalize(theirs.Hobbies))
	passions := intersect(Normalize(mine.Passions), Normalize(theirs.Passions))

	shared := []string{}
	shared = append(shared, music...)
	shared = append(shared, hobbies...)
	shared = append(shared, passions...)
	if len(shared) > sharedCap {
		shared = shared[:sharedCap]
	}

	return entity.MutualInterests{
		MusicGenres: music,
		Hobbies:     hobbies,
		Passions:    passions,
		Shared:      shared,
		Count:       len(music) + len(hobbies) + len(passions),
	}
}

// MatchReasons renders human-readable reasons for a match from the mutual
// interests, at most three tags per category.
func MatchReasons(mine, theirs entity.ProfileQuestions) ([]string, entity.MutualInterests) {
	mutual := Compute(mine, theirs)
	reasons := []string{}
	if len(mutual.MusicGenres) > 0 {
		reasons = append(reasons, fmt.Sprintf("Shared music: %s", strings.Join(capAt(mutual.MusicGenres, 3), ", ")))
	}
	if len(mutual.Hobbies) > 0 {
		reasons = append(reasons, fmt.Sprintf("Shared hobbies: %s", strings.Join(capAt(mutual.Hobbies, 3), ", ")))
	}
	if len(mutual.Passions) > 0 {
		reasons = append(reasons, fmt.Sprintf("Shared passions: %s", strings.Join(capAt(mutual.Passions, 3), ", ")))
	}
	return reasons, mutual
}

func capAt(tags []string, n int) []string {
	if len(tags) > n {
		return tags[:n]
	}
	return tags
}

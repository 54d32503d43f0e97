// Package suggest filters the static gift catalog against a person's
// profile and remaining budget. The engine is pure: catalog order is
// preserved, results are not capped, and repeated calls are free of side
// effects.
package suggest

import (
	"strconv"
	"strings"

	"github.com/wensjes/registry/internal/models"
)

// Suggest returns the catalog entries matching the profile, in catalog
// order. Filter stages, applied in sequence:
//
//  1. entry targets the age group
//  2. entry's gender list is empty or contains the gender
//  3. entry's interest list is empty or intersects the interests
//  4. with a remaining budget given, the entry's price-range lower bound
//     must not exceed it — a zero or negative remaining budget still
//     filters (very restrictively), there is no bypass
func Suggest(ageGroup models.AgeGroup, gender models.Gender, interests []string, remaining *float64) []models.Suggestion {
	return Filter(Catalog, ageGroup, gender, interests, remaining)
}

// Filter applies the suggestion stages to an arbitrary catalog slice.
func Filter(catalog []models.Suggestion, ageGroup models.AgeGroup, gender models.Gender, interests []string, remaining *float64) []models.Suggestion {
	result := []models.Suggestion{}
	for _, entry := range catalog {
		if !containsAgeGroup(entry.TargetAgeGroups, ageGroup) {
			continue
		}
		if len(entry.TargetGenders) > 0 && !containsGender(entry.TargetGenders, gender) {
			continue
		}
		if len(entry.TargetInterests) > 0 && !intersects(entry.TargetInterests, interests) {
			continue
		}
		if remaining != nil && PriceLowerBound(entry.PriceRange) > *remaining {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// PriceLowerBound parses the lower bound out of a price-range label like
// "€10-20". Unparseable labels yield 0, which never filters the entry out.
func PriceLowerBound(label string) float64 {
	s := strings.TrimPrefix(strings.TrimSpace(label), "€")
	if i := strings.IndexByte(s, '-'); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func containsAgeGroup(groups []models.AgeGroup, g models.AgeGroup) bool {
	for _, v := range groups {
		if v == g {
			return true
		}
	}
	return false
}

func containsGender(genders []models.Gender, g models.Gender) bool {
	for _, v := range genders {
		if v == g {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

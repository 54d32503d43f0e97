package redis

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wensjes/registry/internal/models"
)

// Hash field codecs. Every record field maps to one hash field so partial
// updates stay partial on the wire. Numbers are decimal strings, bools
// "0"/"1", string sets JSON arrays.

func encodePerson(p *models.Person) map[string]any {
	fields := map[string]any{
		"name":          p.Name,
		"age_group":     string(p.AgeGroup),
		"gender":        string(p.Gender),
		"interests":     encodeStrings(p.Interests),
		"share_code":    p.ShareCode,
		"created_at":    strconv.FormatInt(p.CreatedAt, 10),
		"owner_id":      p.OwnerID,
		"photo_ref":     p.PhotoRef,
		"pin":           p.Pin,
		"collaborators": encodeStrings(p.Collaborators),
	}
	if p.Budget != nil {
		fields["budget"] = strconv.FormatFloat(*p.Budget, 'f', -1, 64)
	}
	return fields
}

func decodePerson(id string, m map[string]string) (*models.Person, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad created_at for person %s: %w", id, err)
	}
	interests, err := decodeStrings(m["interests"])
	if err != nil {
		return nil, fmt.Errorf("bad interests for person %s: %w", id, err)
	}
	collaborators, err := decodeStrings(m["collaborators"])
	if err != nil {
		return nil, fmt.Errorf("bad collaborators for person %s: %w", id, err)
	}
	person := &models.Person{
		ID:            id,
		Name:          m["name"],
		AgeGroup:      models.AgeGroup(m["age_group"]),
		Gender:        models.Gender(m["gender"]),
		Interests:     interests,
		ShareCode:     m["share_code"],
		CreatedAt:     createdAt,
		OwnerID:       m["owner_id"],
		PhotoRef:      m["photo_ref"],
		Pin:           m["pin"],
		Collaborators: collaborators,
	}
	if raw, ok := m["budget"]; ok {
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad budget for person %s: %w", id, err)
		}
		person.Budget = &budget
	}
	return person, nil
}

// personPatchFields translates a patch into the hash fields to set and the
// fields to delete. Untouched fields never appear, which is what keeps
// concurrent collaborator edits mergeable per field.
func personPatchFields(patch *models.PersonPatch) (sets map[string]any, dels []string) {
	sets = map[string]any{}
	if patch.Name != nil {
		sets["name"] = *patch.Name
	}
	if patch.AgeGroup != nil {
		sets["age_group"] = string(*patch.AgeGroup)
	}
	if patch.Gender != nil {
		sets["gender"] = string(*patch.Gender)
	}
	if patch.Interests != nil {
		sets["interests"] = encodeStrings(*patch.Interests)
	}
	if patch.PhotoRef != nil {
		sets["photo_ref"] = *patch.PhotoRef
	}
	if patch.Budget != nil {
		sets["budget"] = strconv.FormatFloat(*patch.Budget, 'f', -1, 64)
	}
	if patch.ClearBudget {
		dels = append(dels, "budget")
	}
	if patch.Pin != nil {
		sets["pin"] = *patch.Pin
	}
	if patch.Collaborators != nil {
		sets["collaborators"] = encodeStrings(*patch.Collaborators)
	}
	return sets, dels
}

func encodeItem(i *models.WishlistItem) map[string]any {
	fields := map[string]any{
		"person_id":  i.PersonID,
		"name":       i.Name,
		"url":        i.URL,
		"image_ref":  i.ImageRef,
		"note":       i.Note,
		"purchased":  encodeBool(i.Purchased),
		"item_order": strconv.Itoa(i.Order),
		"created_at": strconv.FormatInt(i.CreatedAt, 10),
	}
	if i.Price != nil {
		fields["price"] = strconv.FormatFloat(*i.Price, 'f', -1, 64)
	}
	return fields
}

func decodeItem(id string, m map[string]string) (*models.WishlistItem, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad created_at for item %s: %w", id, err)
	}
	order, err := strconv.Atoi(m["item_order"])
	if err != nil {
		return nil, fmt.Errorf("bad item_order for item %s: %w", id, err)
	}
	item := &models.WishlistItem{
		ID:        id,
		PersonID:  m["person_id"],
		Name:      m["name"],
		URL:       m["url"],
		ImageRef:  m["image_ref"],
		Note:      m["note"],
		Purchased: m["purchased"] == "1",
		Order:     order,
		CreatedAt: createdAt,
	}
	if raw, ok := m["price"]; ok {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad price for item %s: %w", id, err)
		}
		item.Price = &price
	}
	return item, nil
}

func itemPatchFields(patch *models.ItemPatch) (sets map[string]any, dels []string) {
	sets = map[string]any{}
	if patch.Name != nil {
		sets["name"] = *patch.Name
	}
	if patch.Price != nil {
		sets["price"] = strconv.FormatFloat(*patch.Price, 'f', -1, 64)
	}
	if patch.ClearPrice {
		dels = append(dels, "price")
	}
	if patch.URL != nil {
		sets["url"] = *patch.URL
	}
	if patch.ImageRef != nil {
		sets["image_ref"] = *patch.ImageRef
	}
	if patch.Note != nil {
		sets["note"] = *patch.Note
	}
	if patch.Purchased != nil {
		sets["purchased"] = encodeBool(*patch.Purchased)
	}
	return sets, dels
}

func encodeUser(u *models.User) map[string]any {
	return map[string]any{
		"username":      u.Username,
		"display_name":  u.DisplayName,
		"password_hash": u.PasswordHash,
		"created_at":    strconv.FormatInt(u.CreatedAt, 10),
	}
}

func decodeUser(id string, m map[string]string) (*models.User, error) {
	createdAt, err := strconv.ParseInt(m["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad created_at for user %s: %w", id, err)
	}
	return &models.User{
		ID:           id,
		Username:     m["username"],
		DisplayName:  m["display_name"],
		PasswordHash: m["password_hash"],
		CreatedAt:    createdAt,
	}, nil
}

func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return string(raw)
}

func decodeStrings(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}

func encodeBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

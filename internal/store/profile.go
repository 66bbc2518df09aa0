package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ngthanh/engmaster/ent"
	"github.com/ngthanh/engmaster/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	dataMap, err := profileDataToMap(p.Data)
	if err != nil {
		return fmt.Errorf("marshal profile data: %w", err)
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.client.Profile.Create().
		SetUpdatedAt(updatedAt).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Latest(ctx context.Context) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Order(ent.Desc(profile.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest profile: %w", err)
	}
	return entProfileToProfile(p)
}

// profileDataToMap converts ProfileData to map[string]any for ent JSON storage.
func profileDataToMap(data ProfileData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entProfileToProfile converts an ent Profile to a store Profile.
func entProfileToProfile(p *ent.Profile) (*Profile, error) {
	b, err := json.Marshal(p.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data ProfileData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal profile data: %w", err)
	}
	return &Profile{
		ID:        p.ID,
		UpdatedAt: p.UpdatedAt,
		Data:      data,
	}, nil
}

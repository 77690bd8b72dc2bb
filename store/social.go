package store

import (
	"context"

	"github.com/google/uuid"

	"printverse/domain"
)

// SocialLinks lists the contact-page social links.
func (s *Store) SocialLinks(ctx context.Context) ([]domain.SocialLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return data.SocialMedia, nil
}

// AddSocialLink appends a social link, assigning it a fresh id.
func (s *Store) AddSocialLink(ctx context.Context, link domain.SocialLink) (domain.SocialLink, error) {
	if err := domain.ValidateSocialLink(link); err != nil {
		return domain.SocialLink{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return domain.SocialLink{}, err
	}
	link.ID = uuid.NewString()
	data.SocialMedia = append(data.SocialMedia, link)
	if err := s.save(ctx, data); err != nil {
		return domain.SocialLink{}, err
	}
	return link, nil
}

// UpdateSocialLink replaces the name and URL of an existing link.
func (s *Store) UpdateSocialLink(ctx context.Context, id string, link domain.SocialLink) error {
	link.ID = id
	if err := domain.ValidateSocialLink(link); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range data.SocialMedia {
		if data.SocialMedia[i].ID == id {
			data.SocialMedia[i] = link
			return s.save(ctx, data)
		}
	}
	return domain.NewNotFoundError(domain.KindSocialLink, id)
}

// DeleteSocialLink removes a link by id.
func (s *Store) DeleteSocialLink(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range data.SocialMedia {
		if data.SocialMedia[i].ID == id {
			data.SocialMedia = append(data.SocialMedia[:i], data.SocialMedia[i+1:]...)
			return s.save(ctx, data)
		}
	}
	return domain.NewNotFoundError(domain.KindSocialLink, id)
}

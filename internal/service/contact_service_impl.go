package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/repository"
	"github.com/google/uuid"
)

type contactService struct {
	contacts repository.ContactRepo
}

func NewContactService(contacts repository.ContactRepo) ContactService {
	return &contactService{contacts: contacts}
}

func (s *contactService) Add(ctx context.Context, name, phone, email string) (*domain.EmergencyContact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("contact name is required")
	}

	now := time.Now()
	c := &domain.EmergencyContact{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     strings.TrimSpace(phone),
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.contacts.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contactService) List(ctx context.Context) ([]domain.EmergencyContact, error) {
	return s.contacts.List(ctx)
}

func (s *contactService) Remove(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}

package services

import (
	"errors"
	"fmt"

	"eventify/internal/logger"
	"eventify/internal/models"
	"eventify/internal/storage"
)

type UserService struct {
	store storage.Store
	log   *logger.Logger
}

func NewUserService(store storage.Store, log *logger.Logger) *UserService {
	return &UserService{store: store, log: log}
}

func (s *UserService) Get(id int64) (*models.User, error) {
	return s.store.GetUserByID(id)
}

func (s *UserService) List(offset, limit int) ([]*models.User, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.store.ListUsers(offset, limit)
}

// UpdateProfile merges the self-service fields (name, email) into the caller's
// own account. Role changes are admin-only and ignored here.
func (s *UserService) UpdateProfile(user *models.User, req *models.UserUpdateRequest) (*models.User, error) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := s.store.UpdateUser(user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// AdminUpdate merges name, email and role into any account.
func (s *UserService) AdminUpdate(id int64, req *models.UserUpdateRequest) (*models.User, error) {
	user, err := s.store.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}

	if err := s.store.UpdateUser(user); err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.log.LogAuth("ADMIN_UPDATE", user.Email, fmt.Sprintf("User %d updated", user.ID))
	return user, nil
}

func (s *UserService) SetActive(id int64, active bool) (*models.User, error) {
	user, err := s.store.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	if err := s.store.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.log.LogAuth("ACTIVATE", user.Email, fmt.Sprintf("User %d active=%t", user.ID, active))
	return user, nil
}

// Delete removes an account. Admins cannot delete themselves.
func (s *UserService) Delete(caller *models.User, id int64) error {
	user, err := s.store.GetUserByID(id)
	if err != nil {
		return err
	}
	if user.ID == caller.ID {
		return ErrSelfDelete
	}

	if err := s.store.DeleteUser(id); err != nil {
		return err
	}
	s.log.LogAuth("DELETE", user.Email, fmt.Sprintf("User %d deleted by %d", id, caller.ID))
	return nil
}

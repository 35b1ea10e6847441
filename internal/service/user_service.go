package service

import (
	"fmt"

	"taskflow/internal/domain"
	"taskflow/pkg/logger"
)

type UserService struct {
	repo   domain.UserRepository
	logger logger.Logger
}

func NewUserService(repo domain.UserRepository, logger logger.Logger) domain.UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

func (s *UserService) ListUsers() ([]domain.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUserByID(id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	if user == nil {
		return nil, &domain.NotFoundError{Entity: domain.EntityUser, ID: id}
	}

	return user, nil
}

func (s *UserService) CreateUser(user *domain.User) error {
	existing, err := s.repo.FindByID(user.ID)
	if err != nil {
		s.logger.Error("ID kontrolü sırasında hata oluştu", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	if existing != nil {
		return &domain.ConflictError{Entity: domain.EntityUser, ID: user.ID}
	}

	if err := s.repo.Create(user); err != nil {
		return err
	}

	s.logger.Info("Yeni kullanıcı oluşturuldu", map[string]interface{}{"id": user.ID})
	return nil
}

// ReplaceUser yol parametresindeki id'yi esas alır; gövde farklı bir id taşıyorsa
// kayıt anahtarı sessizce değişmesin diye istek reddedilir.
func (s *UserService) ReplaceUser(id int64, user *domain.User) error {
	if user.ID != id {
		return &domain.ValidationError{
			Field:  "id",
			Reason: fmt.Sprintf("gövdedeki id (%d) yol parametresiyle (%d) eşleşmiyor", user.ID, id),
		}
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	if existing == nil {
		return &domain.NotFoundError{Entity: domain.EntityUser, ID: id}
	}

	if err := s.repo.Update(user); err != nil {
		return err
	}

	s.logger.Info("Kullanıcı güncellendi", map[string]interface{}{"id": id})
	return nil
}

func (s *UserService) DeleteUser(id int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	if existing == nil {
		return &domain.NotFoundError{Entity: domain.EntityUser, ID: id}
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Kullanıcı silindi", map[string]interface{}{"id": id})
	return nil
}

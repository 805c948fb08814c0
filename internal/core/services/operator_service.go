package services

import (
	"context"
	"errors"
	"log"

	"antlogistics/internal/adapters/persistence/models"
	"antlogistics/internal/adapters/persistence/repositories"
	"antlogistics/internal/core/domain"
	"antlogistics/internal/pkg/password"

	"gorm.io/gorm"
)

const (
	// DefaultIdleTimeoutMinutes is applied when no idle timeout is supplied
	DefaultIdleTimeoutMinutes = 30
	// MinIdleTimeoutMinutes and MaxIdleTimeoutMinutes bound the idle timeout
	MinIdleTimeoutMinutes = 5
	MaxIdleTimeoutMinutes = 180
)

// OperatorService handles operator account management
type OperatorService struct {
	operatorRepo repositories.OperatorRepository
}

// NewOperatorService creates a new operator service
func NewOperatorService(operatorRepo repositories.OperatorRepository) *OperatorService {
	return &OperatorService{operatorRepo: operatorRepo}
}

// CreateOperatorInput represents operator creation input
type CreateOperatorInput struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	FullName           string `json:"full_name"`
	Role               string `json:"role"`
	IdleTimeoutMinutes int    `json:"idle_timeout_minutes"`
	IsActive           *bool  `json:"is_active"`
}

// UpdateOperatorInput represents operator update input (admin)
type UpdateOperatorInput struct {
	FullName           *string `json:"full_name"`
	Role               *string `json:"role"`
	IdleTimeoutMinutes *int    `json:"idle_timeout_minutes"`
	IsActive           *bool   `json:"is_active"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ListOperatorsOutput represents paginated operator listing output
type ListOperatorsOutput struct {
	Operators  []*models.OperatorResponse `json:"operators"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int                        `json:"total_pages"`
}

func validateIdleTimeout(minutes int) (int, error) {
	if minutes == 0 {
		return DefaultIdleTimeoutMinutes, nil
	}
	if minutes < MinIdleTimeoutMinutes || minutes > MaxIdleTimeoutMinutes {
		return 0, domain.Validationf("idle timeout must be between %d and %d minutes",
			MinIdleTimeoutMinutes, MaxIdleTimeoutMinutes)
	}
	return minutes, nil
}

// Create creates a new operator account
func (s *OperatorService) Create(ctx context.Context, input *CreateOperatorInput) (*models.OperatorResponse, error) {
	if domain.Blank(input.Username) {
		return nil, domain.Validationf("username is required")
	}
	if !password.ValidatePassword(input.Password) {
		return nil, domain.Validationf("password must be at least 8 characters")
	}

	role := domain.Role(input.Role)
	if input.Role == "" {
		role = domain.RoleOperator
	}
	if !domain.ValidRole(role) {
		return nil, domain.Validationf("role must be operator or admin")
	}

	idleTimeout, err := validateIdleTimeout(input.IdleTimeoutMinutes)
	if err != nil {
		return nil, err
	}

	username := domain.NormalizeUsername(input.Username)

	exists, err := s.operatorRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflictf("username exists")
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	operator := &models.Operator{
		Username:           username,
		PasswordHash:       hashed,
		FullName:           input.FullName,
		Role:               string(role),
		IdleTimeoutMinutes: idleTimeout,
		IsActive:           isActive,
	}

	if err := s.operatorRepo.Create(ctx, operator); err != nil {
		return nil, err
	}

	log.Printf("✅ Operator created: %s (%s)", operator.Username, operator.Role)
	return operator.ToResponse(), nil
}

// GetByID gets an operator by ID
func (s *OperatorService) GetByID(ctx context.Context, id string) (*models.OperatorResponse, error) {
	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("operator not found")
		}
		return nil, err
	}
	return operator.ToResponse(), nil
}

// List lists operators with pagination
func (s *OperatorService) List(ctx context.Context, page, limit int) (*ListOperatorsOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit

	operators, total, err := s.operatorRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OperatorResponse, len(operators))
	for i, operator := range operators {
		responses[i] = operator.ToResponse()
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &ListOperatorsOutput{
		Operators:  responses,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Update updates an operator (admin). An admin cannot change their own role
// or deactivate themselves.
func (s *OperatorService) Update(ctx context.Context, id, adminID string, input *UpdateOperatorInput) (*models.OperatorResponse, error) {
	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("operator not found")
		}
		return nil, err
	}

	if input.Role != nil {
		if id == adminID {
			return nil, domain.Validationf("cannot change your own role")
		}
		if !domain.ValidRole(domain.Role(*input.Role)) {
			return nil, domain.Validationf("role must be operator or admin")
		}
		operator.Role = *input.Role
	}

	if input.FullName != nil {
		operator.FullName = *input.FullName
	}

	if input.IdleTimeoutMinutes != nil {
		idleTimeout, err := validateIdleTimeout(*input.IdleTimeoutMinutes)
		if err != nil {
			return nil, err
		}
		operator.IdleTimeoutMinutes = idleTimeout
	}

	if input.IsActive != nil {
		if id == adminID && !*input.IsActive {
			return nil, domain.Validationf("cannot deactivate your own account")
		}
		operator.IsActive = *input.IsActive
	}

	if err := s.operatorRepo.Update(ctx, operator); err != nil {
		return nil, err
	}

	return operator.ToResponse(), nil
}

// ChangePassword changes an operator's own password
func (s *OperatorService) ChangePassword(ctx context.Context, id string, input *ChangePasswordInput) error {
	operator, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFoundf("operator not found")
		}
		return err
	}

	if !password.Verify(input.OldPassword, operator.PasswordHash) {
		return domain.Validationf("old password is incorrect")
	}
	if !password.ValidatePassword(input.NewPassword) {
		return domain.Validationf("password must be at least 8 characters")
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	operator.PasswordHash = hashed
	return s.operatorRepo.Update(ctx, operator)
}

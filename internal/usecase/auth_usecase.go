package usecase

import (
	"context"

	"servilink/internal/domain/entity"
	"servilink/internal/domain/repository"
	"servilink/internal/infrastructure/auth"
	"servilink/pkg/errors"
	"servilink/pkg/logger"
)

// Client-side routes the front end navigates to after auth
// operations. The store never navigates itself; it reports the
// target and the caller applies it.
const (
	RouteLogin              = "/login"
	RouteCustomerDashboard  = "/painel-usuario"
	RouteWorkerDashboard    = "/painel-trabalhador"
	RouteWorkerProfileSetup = "/perfil-trabalhador"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	session  *Session
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens *auth.TokenManager, session *Session) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		session:  session,
	}
}

// Hydrate restores the session from the persisted pointer. Called
// once at startup, before the store serves any operation.
func (uc *AuthUseCase) Hydrate(ctx context.Context) error {
	user, err := uc.userRepo.GetSession(ctx)
	if err != nil {
		return err
	}
	if user != nil {
		uc.session.set(user)
		logger.Info("Restored session for user %s", user.ID)
	}
	return nil
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // "customer" or "worker"
}

type UpdateProfileInput struct {
	Name            *string
	ProfilePicture  *string
	Location        *string
	Skills          []string
	ProfileComplete *bool
}

type AuthResult struct {
	User       *entity.User
	Token      string
	RedirectTo string
}

type LogoutResult struct {
	RedirectTo string
}

// redirectFor picks the landing route after login/register: workers
// without a complete profile go to profile setup first.
func redirectFor(user *entity.User) string {
	if user.IsWorker() && !user.ProfileComplete {
		return RouteWorkerProfileSetup
	}
	if user.IsWorker() {
		return RouteWorkerDashboard
	}
	return RouteCustomerDashboard
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.InvalidCredentials(err)
		}
		return nil, err
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return nil, errors.InvalidCredentials(err)
	}

	if err := uc.userRepo.SaveSession(ctx, user.ID); err != nil {
		return nil, err
	}
	uc.session.set(user)

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate session token", err)
	}

	return &AuthResult{
		User:       user,
		Token:      token,
		RedirectTo: redirectFor(user),
	}, nil
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use")
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		// Customers are complete at registration; workers still have
		// to fill in their profile.
		ProfileComplete: input.Role == entity.RoleCustomer,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.userRepo.SaveSession(ctx, user.ID); err != nil {
		return nil, err
	}
	uc.session.set(user)

	token, err := uc.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate session token", err)
	}

	return &AuthResult{
		User:       user,
		Token:      token,
		RedirectTo: redirectFor(user),
	}, nil
}

// Logout clears the session in memory and in storage. It never
// fails: a storage error is logged and the in-memory session is
// cleared regardless.
func (uc *AuthUseCase) Logout(ctx context.Context) *LogoutResult {
	if err := uc.userRepo.ClearSession(ctx); err != nil {
		logger.Warn("Failed to clear persisted session: %v", err)
	}
	uc.session.clear()

	return &LogoutResult{RedirectTo: RouteLogin}
}

// UpdateProfile merge-patches the current user and persists the
// result. Without a session it is a silent no-op.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	user := uc.session.Current()
	if user == nil {
		return nil, nil
	}

	updated := *user
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.ProfilePicture != nil {
		updated.ProfilePicture = *input.ProfilePicture
	}
	if input.Location != nil {
		updated.Location = *input.Location
	}
	if input.Skills != nil {
		updated.Skills = input.Skills
	}
	if input.ProfileComplete != nil {
		updated.ProfileComplete = *input.ProfileComplete
	}

	if err := uc.userRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	uc.session.set(&updated)

	return &updated, nil
}

func (uc *AuthUseCase) CurrentUser() *entity.User {
	return uc.session.Current()
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

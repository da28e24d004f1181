package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/pkg/bcrypt"
	jwtPkg "github.com/tamsou/portfolio-backend/pkg/jwt"
	"github.com/tamsou/portfolio-backend/pkg/logger"
)

const (
	TokenExpiryEmailVerify = 24 * time.Hour
)

// Mailer is the slice of the email service the auth flow needs.
type Mailer interface {
	SendVerificationEmail(to, name, token string) error
	SendWelcomeEmail(to, name string) error
}

type AuthService struct {
	userRepo      *repository.UserRepository
	mailer        Mailer
	jwtSecret     []byte
	jwtIssuer     string
	adminUsername string
	adminPassword string
}

func NewAuthService(userRepo *repository.UserRepository, mailer Mailer) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		mailer:        mailer,
		jwtSecret:     []byte(os.Getenv("JWT_SECRET")),
		jwtIssuer:     os.Getenv("JWT_ISSUER"),
		adminUsername: os.Getenv("ADMIN_USERNAME"),
		adminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

// Register creates an unverified account and sends the confirmation
// email. No session token is returned: the user signs in only after
// confirming their address.
func (s *AuthService) Register(req models.RegisterRequest) (*models.UserProfile, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("Un compte existe déjà avec cet email")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   hashedPassword,
		IsVerified: false,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	verificationToken, err := s.generateVerificationToken(user.Email)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendVerificationEmail(user.Email, user.FullName, verificationToken); err != nil {
			logger.L.Errorw("verification email failed", "email", user.Email, "error", err)
		}
		if err := s.mailer.SendWelcomeEmail(user.Email, user.FullName); err != nil {
			logger.L.Errorw("welcome email failed", "email", user.Email, "error", err)
		}
	}()

	profile := user.Profile()
	return &profile, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, errors.New("Email ou mot de passe incorrect")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errors.New("Email ou mot de passe incorrect")
	}

	// Checked after the password so the message never leaks whether the
	// credentials were right for an unconfirmed account.
	if !user.IsVerified {
		return nil, errors.New("Veuillez confirmer votre email avant de vous connecter")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %v", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  user.Profile(),
	}, nil
}

func (s *AuthService) VerifyEmail(token string) error {
	claims, err := jwtPkg.ValidateToken(token)
	if err != nil {
		return errors.New("invalid or expired token")
	}

	email, ok := claims["email"].(string)
	if !ok {
		return errors.New("invalid token claims")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return errors.New("user not found")
	}

	if user.IsVerified {
		return errors.New("email already verified")
	}

	user.IsVerified = true
	if err := s.userRepo.Update(user); err != nil {
		return errors.New("failed to verify email")
	}

	return nil
}

// AdminLogin checks the submitted pair against the configured admin
// credentials and issues a role-bearing token. Any other pair fails with
// the same message and changes nothing.
func (s *AuthService) AdminLogin(req models.AdminLoginRequest) (string, error) {
	if s.adminUsername == "" || s.adminPassword == "" {
		return "", errors.New("Identifiants incorrects")
	}
	if req.Username != s.adminUsername || req.Password != s.adminPassword {
		return "", errors.New("Identifiants incorrects")
	}

	return jwtPkg.GenerateAdminToken(req.Username)
}

func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *AuthService) generateVerificationToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(TokenExpiryEmailVerify).Unix(),
		"iat":   time.Now().Unix(),
		"iss":   s.jwtIssuer,
		"type":  "email_verification",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sandeepkd1824/tummy-tap/entity"
	"github.com/Sandeepkd1824/tummy-tap/pkg/mailer"
	"github.com/Sandeepkd1824/tummy-tap/repository"
	"github.com/Sandeepkd1824/tummy-tap/utils"
)

// AuthService handles registration, OTP verification and login.
type AuthService struct {
	UserRepo  *repository.UserRepository
	OTPRepo   *repository.OTPRepository
	Mailer    mailer.Mailer
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(ur *repository.UserRepository, or *repository.OTPRepository, m mailer.Mailer, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: ur, OTPRepo: or, Mailer: m, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates an unverified user and emails a fresh OTP.
func (s *AuthService) Register(username, email, password, name, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if count, err := s.UserRepo.CountByEmail(email); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrEmailTaken
	}
	if count, err := s.UserRepo.CountByUsername(username); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Phone:    strings.TrimSpace(phone),
		Role:     "customer",
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	if err := s.sendOTP(user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyOTP checks the code against the stored one and marks the user
// verified. Expired codes are removed so a stale code cannot be retried.
func (s *AuthService) VerifyOTP(email, code string) error {
	user, err := s.UserRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	otp, err := s.OTPRepo.FindByUserAndCode(user.ID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOTP
		}
		return err
	}
	if otp.IsExpired() {
		_ = s.OTPRepo.Delete(user.ID)
		return ErrExpiredOTP
	}

	if err := s.UserRepo.MarkVerified(user.ID); err != nil {
		return err
	}
	return s.OTPRepo.Delete(user.ID)
}

func (s *AuthService) ResendOTP(email string) error {
	user, err := s.UserRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	return s.sendOTP(user)
}

// Login accepts a username or an email in the same field; "@" decides.
// Unverified users cannot log in.
func (s *AuthService) Login(usernameOrEmail, password string) (string, *entity.User, error) {
	usernameOrEmail = strings.TrimSpace(usernameOrEmail)

	var user *entity.User
	var err error
	if strings.Contains(usernameOrEmail, "@") {
		user, err = s.UserRepo.FindByEmail(strings.ToLower(usernameOrEmail))
	} else {
		user, err = s.UserRepo.FindByUsername(usernameOrEmail)
	}
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return "", nil, ErrNotVerified
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.UserRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}

func (s *AuthService) sendOTP(user *entity.User) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.OTPRepo.Upsert(user.ID, code); err != nil {
		return err
	}
	body := fmt.Sprintf("Your OTP code is: %s. It is valid for 5 minutes.", code)
	return s.Mailer.Send(user.Email, "Your OTP Code for TummyTap", body)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

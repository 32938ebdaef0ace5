package handlers

import (
	"log"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
)

// HandlerBundle groups the stub gateway's endpoint handlers around one
// shared in-memory store. The stub exists for local development and
// integration tests; it emulates the FarmerEats API envelope exactly,
// state included only for the lifetime of the process.
type HandlerBundle struct {
	Store *MemoryStore
}

func NewHandlerBundle() *HandlerBundle {
	return &HandlerBundle{Store: NewMemoryStore()}
}

// account is a registered farmer kept in memory.
type account struct {
	ID           string
	FullName     string
	Email        string
	Phone        string
	PasswordHash []byte
	Role         string
	LoginType    string
	SocialID     string
	Verified     bool
}

// otpRecord is the most recently issued recovery code. The real API
// keys codes by session; the stub keeps one, which is all the client
// flow needs.
type otpRecord struct {
	Code      string
	Phone     string
	ExpiresAt time.Time
	Verified  bool
}

// MemoryStore backs the stub gateway.
type MemoryStore struct {
	mu      sync.Mutex
	byEmail map[string]*account
	byPhone map[string]*account
	otp     *otpRecord
}

// NewMemoryStore seeds one verified farmer account so login and the
// recovery flow work out of the box, plus one unverified account to
// exercise that failure path.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		byEmail: make(map[string]*account),
		byPhone: make(map[string]*account),
	}
	s.seed("Jane Farmer", "farmer@example.com", "5551234567", "secret1", true)
	s.seed("Pending Farmer", "pending@example.com", "5550000000", "secret1", false)
	return s
}

func (s *MemoryStore) seed(name, email, phone, password string, verified bool) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to seed stub account: %v", err)
	}
	acct := &account{
		ID:           uuid.New().String(),
		FullName:     name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         "farmer",
		LoginType:    "email",
		Verified:     verified,
	}
	s.byEmail[email] = acct
	s.byPhone[phone] = acct
}

func (s *MemoryStore) accountByEmail(email string) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byEmail[email]
}

func (s *MemoryStore) accountByPhone(phone string) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byPhone[phone]
}

func (s *MemoryStore) addAccount(acct *account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[acct.Email]; exists {
		return false
	}
	s.byEmail[acct.Email] = acct
	if acct.Phone != "" {
		s.byPhone[acct.Phone] = acct
	}
	return true
}

func (s *MemoryStore) issueOTP(phone, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otp = &otpRecord{Code: code, Phone: phone, ExpiresAt: time.Now().Add(ttl)}
}

// verifyOTP checks the submitted code against the last issued one.
func (s *MemoryStore) verifyOTP(code string) (ok bool, expired bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.otp == nil || s.otp.Code != code {
		return false, false
	}
	if time.Now().After(s.otp.ExpiresAt) {
		return false, true
	}
	s.otp.Verified = true
	return true, false
}

// LastOTP reports the most recently issued recovery code. The stub has
// no SMS channel; local tooling and tests read the code from here.
func (s *MemoryStore) LastOTP() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.otp == nil {
		return ""
	}
	return s.otp.Code
}

// resetPassword applies the new password to the account that verified
// the last OTP.
func (s *MemoryStore) resetPassword(newPassword string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.otp == nil || !s.otp.Verified {
		return false
	}
	acct := s.byPhone[s.otp.Phone]
	if acct == nil {
		return false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return false
	}
	acct.PasswordHash = hash
	s.otp = nil
	return true
}

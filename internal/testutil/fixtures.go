package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/arjun/cybercafe-backend/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
	role     domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("Test User %s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
		role:     domain.RoleUser,
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:        uuid.New(),
		Name:      b.name,
		Email:     b.email,
		Password:  string(hashedPassword),
		Role:      b.role,
		CreatedAt: time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

// BuildAndAuthenticate creates a user via API and returns the user and access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	userID, _ := uuid.Parse(authResp.User.ID)
	user := &domain.User{
		ID:    userID,
		Name:  authResp.User.Name,
		Email: authResp.User.Email,
	}

	return user, authResp.AccessToken
}

// ComputerBuilder creates test computers with a builder pattern
type ComputerBuilder struct {
	name           string
	status         domain.ComputerStatus
	specifications string
	hourlyRate     float64
}

// NewComputerBuilder creates a new ComputerBuilder with default values
func NewComputerBuilder() *ComputerBuilder {
	return &ComputerBuilder{
		name:           fmt.Sprintf("PC-%s", uuid.New().String()[:8]),
		status:         domain.ComputerStatusAvailable,
		specifications: "Intel i5, 16GB RAM, RTX 3060",
		hourlyRate:     30.0,
	}
}

func (b *ComputerBuilder) WithName(name string) *ComputerBuilder {
	b.name = name
	return b
}

func (b *ComputerBuilder) WithStatus(status domain.ComputerStatus) *ComputerBuilder {
	b.status = status
	return b
}

func (b *ComputerBuilder) WithHourlyRate(rate float64) *ComputerBuilder {
	b.hourlyRate = rate
	return b
}

// Build creates the computer in the database
func (b *ComputerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Computer {
	t.Helper()

	computer := &domain.Computer{
		ID:             uuid.New(),
		Name:           b.name,
		Status:         b.status,
		Specifications: b.specifications,
		HourlyRate:     b.hourlyRate,
	}

	if err := db.Create(computer).Error; err != nil {
		t.Fatalf("failed to create computer: %v", err)
	}

	return computer
}

// SessionBuilder creates test sessions with a builder pattern
type SessionBuilder struct {
	user      *domain.User
	computer  *domain.Computer
	startTime time.Time
	endTime   *time.Time
	duration  *float64
	cost      *float64
}

// NewSessionBuilder creates a new SessionBuilder starting now, open
func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		startTime: time.Now(),
	}
}

func (b *SessionBuilder) WithUser(user *domain.User) *SessionBuilder {
	b.user = user
	return b
}

func (b *SessionBuilder) WithComputer(computer *domain.Computer) *SessionBuilder {
	b.computer = computer
	return b
}

func (b *SessionBuilder) StartedAt(start time.Time) *SessionBuilder {
	b.startTime = start
	return b
}

// Closed marks the session ended at the given time with the given cost.
// Duration is derived from the start and end times.
func (b *SessionBuilder) Closed(end time.Time, cost float64) *SessionBuilder {
	duration := end.Sub(b.startTime).Hours()
	b.endTime = &end
	b.duration = &duration
	b.cost = &cost
	return b
}

// Build creates the session in the database. User and computer are built
// with defaults when not supplied.
func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Session {
	t.Helper()

	if b.user == nil {
		b.user, _ = NewUserBuilder().Build(t, db)
	}
	if b.computer == nil {
		status := domain.ComputerStatusInUse
		if b.endTime != nil {
			status = domain.ComputerStatusAvailable
		}
		b.computer = NewComputerBuilder().WithStatus(status).Build(t, db)
	}

	session := &domain.Session{
		ID:         uuid.New(),
		UserID:     b.user.ID,
		ComputerID: b.computer.ID,
		StartTime:  b.startTime,
		EndTime:    b.endTime,
		Duration:   b.duration,
		Cost:       b.cost,
	}

	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	session.User = b.user
	session.Computer = b.computer
	return session
}

// DoAuthenticated performs an HTTP request with a Bearer token.
func DoAuthenticated(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

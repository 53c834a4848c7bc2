// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Categories used for generated posts; matches the set the frontend filters on.
var Categories = []string{"General", "Tech", "Travel", "Food", "Music"}

// Seeder populates the database with fake users, posts, likes and the
// notifications those likes fan out.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// Options controls how much data the seeder creates.
type Options struct {
	Users         int
	PostsPerUser  int
	LikesPerPost  int
	DemoPassword  string
	SpreadMaxDays int
}

func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ClearAll wipes every seeded table. Order matters for foreign keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Notification{}, &models.Like{}, &models.Post{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run populates the database per the given options and returns a summary.
func (s *Seeder) Run(opts Options) (string, error) {
	if opts.Users <= 0 {
		opts.Users = 10
	}
	if opts.PostsPerUser <= 0 {
		opts.PostsPerUser = 5
	}
	if opts.DemoPassword == "" {
		opts.DemoPassword = "password1"
	}
	if opts.SpreadMaxDays <= 0 {
		opts.SpreadMaxDays = 90
	}

	users, err := s.createUsers(opts)
	if err != nil {
		return "", err
	}

	posts, err := s.createPosts(users, opts)
	if err != nil {
		return "", err
	}

	likes, err := s.createLikes(users, posts, opts)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d users, %d posts, %d likes", len(users), len(posts), likes), nil
}

func (s *Seeder) createUsers(opts Options) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(opts.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		users = append(users, &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hash),
			Bio:      gofakeit.Sentence(8),
			Avatar:   models.DefaultAvatar,
			Cover:    models.DefaultCover,
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, opts Options) ([]*models.Post, error) {
	var posts []*models.Post
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			spread := time.Duration(s.rng.Intn(opts.SpreadMaxDays*24)) * time.Hour
			posts = append(posts, &models.Post{
				Title:     gofakeit.Sentence(5),
				Content:   gofakeit.Paragraph(2, 4, 8, "\n"),
				Category:  Categories[s.rng.Intn(len(Categories))],
				UserID:    user.ID,
				CreatedAt: time.Now().Add(-spread),
			})
		}
	}
	if err := s.db.Create(&posts).Error; err != nil {
		return nil, fmt.Errorf("create posts: %w", err)
	}
	return posts, nil
}

// createLikes toggles likes through the repository so the notification
// fan-out runs exactly as it does in production.
func (s *Seeder) createLikes(users []*models.User, posts []*models.Post, opts Options) (int, error) {
	likeRepo := repository.NewLikeRepository(s.db)
	created := 0

	for _, post := range posts {
		n := s.rng.Intn(opts.LikesPerPost + 1)
		perm := s.rng.Perm(len(users))
		for _, idx := range perm {
			if n == 0 {
				break
			}
			user := users[idx]
			if user.ID == post.UserID {
				continue
			}
			if _, err := likeRepo.Toggle(context.Background(), user.ID, post.ID); err != nil {
				return created, fmt.Errorf("like post %d: %w", post.ID, err)
			}
			created++
			n--
		}
	}
	return created, nil
}

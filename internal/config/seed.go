package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"postboard/internal/domain/entity"
)

// NoSeed as SEED_FILE starts the service with empty collections.
const NoSeed = "none"

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the startup dataset.
type Seed struct {
	Accounts []SeedAccount `yaml:"accounts"`
	Posts    []SeedPost    `yaml:"posts"`
	Comments []SeedComment `yaml:"comments"`
}

type SeedAccount struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Age   *int   `yaml:"age"`
}

type SeedPost struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	Body      string `yaml:"body"`
	Published bool   `yaml:"published"`
	Author    string `yaml:"author"`
}

type SeedComment struct {
	ID     string `yaml:"id"`
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
	Post   string `yaml:"post"`
}

// LoadSeed reads the dataset at path. An empty path yields the embedded default
// and NoSeed yields an empty dataset.
// The path parameter is expected to come from trusted deployment config.
func LoadSeed(path string) (*Seed, error) {
	switch path {
	case NoSeed:
		return &Seed{}, nil
	case "":
		return ParseSeed(defaultSeed)
	}

	// #nosec G304 -- path comes from SEED_FILE, not from request input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML dataset. Unknown keys are rejected so a misspelt
// field does not silently load as a zero value.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &seed, nil
}

// Entities converts the dataset into domain records ready for the store.
func (s *Seed) Entities() ([]entity.Account, []entity.Post, []entity.Comment) {
	accounts := make([]entity.Account, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		accounts = append(accounts, entity.Account{ID: a.ID, Name: a.Name, Email: a.Email, Age: a.Age}.Clone())
	}
	posts := make([]entity.Post, 0, len(s.Posts))
	for _, p := range s.Posts {
		posts = append(posts, entity.Post{
			ID:        p.ID,
			Title:     p.Title,
			Body:      p.Body,
			Published: p.Published,
			AuthorID:  p.Author,
		})
	}
	comments := make([]entity.Comment, 0, len(s.Comments))
	for _, c := range s.Comments {
		comments = append(comments, entity.Comment{
			ID:       c.ID,
			Text:     c.Text,
			AuthorID: c.Author,
			PostID:   c.Post,
		})
	}
	return accounts, posts, comments
}

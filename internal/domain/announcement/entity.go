package announcement

import (
	"errors"
	"strings"
	"time"
)

var ErrTitleRequired = errors.New("announcement title is required")

type Announcement struct {
	id          string
	title       string
	description string
	author      string
	createdAt   time.Time
}

func NewAnnouncement(title, description, author string, now time.Time) (*Announcement, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	return &Announcement{
		title:       title,
		description: strings.TrimSpace(description),
		author:      strings.TrimSpace(author),
		createdAt:   now,
	}, nil
}

func (a *Announcement) ID() string           { return a.id }
func (a *Announcement) Title() string        { return a.title }
func (a *Announcement) Description() string  { return a.description }
func (a *Announcement) Author() string       { return a.author }
func (a *Announcement) CreatedAt() time.Time { return a.createdAt }

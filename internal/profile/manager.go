package profile

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/kalambet/olis/internal/attachment"
	"github.com/kalambet/olis/internal/storage"
)

// Manager owns the in-memory profile and post list. State is hydrated once from
// the store and every mutation is written through immediately.
type Manager struct {
	store storage.KeyValue

	mu      sync.RWMutex
	profile Profile
	posts   []Post
}

// NewManager hydrates a Manager from store. Missing or malformed values fall
// back to an empty profile and no posts.
func NewManager(store storage.KeyValue) *Manager {
	m := &Manager{store: store}
	m.Reload()
	return m
}

// Reload discards in-memory state (including any attachment) and re-reads the store.
func (m *Manager) Reload() {
	p := storage.Get(m.store, storage.KeyProfile, Profile{})
	posts := storage.Get(m.store, storage.KeyPosts, []Post{})
	if posts == nil {
		posts = []Post{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
	m.posts = posts
}

// Profile returns a deep copy of the current profile.
func (m *Manager) Profile() Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return deepCopyProfile(m.profile)
}

// Posts returns a copy of the current post list.
func (m *Manager) Posts() []Post {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copyPosts(m.posts)
}

// Snapshot returns profile and posts under a single lock.
func (m *Manager) Snapshot() (Profile, []Post) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return deepCopyProfile(m.profile), copyPosts(m.posts)
}

// Update applies patch to the profile and persists it.
func (m *Manager) Update(patch Patch) Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	patch.Apply(&m.profile)
	m.persistProfile()
	return deepCopyProfile(m.profile)
}

// SetAttachment attaches an uploaded PDF. Only its name is persisted.
func (m *Manager) SetAttachment(info *attachment.Info) Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile.Attachment = info
	if info != nil {
		m.profile.AttachmentName = info.Name
	} else {
		m.profile.AttachmentName = ""
	}
	m.persistProfile()
	return deepCopyProfile(m.profile)
}

// AddPost validates content and appends a new post.
func (m *Manager) AddPost(content string, featured bool, mediaDescription string) (Post, error) {
	post, err := NewPost(content, featured, mediaDescription)
	if err != nil {
		return Post{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	m.persistPosts()
	return post, nil
}

// RemovePost deletes the post with id.
func (m *Manager) RemovePost(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := indexOfPost(m.posts, id)
	if i < 0 {
		return fmt.Errorf("removing %q: %w", id, ErrPostNotFound)
	}
	m.posts = append(m.posts[:i:i], m.posts[i+1:]...)
	m.persistPosts()
	return nil
}

// ToggleFeatured flips the featured flag of the post with id and returns it.
func (m *Manager) ToggleFeatured(id string) (Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := indexOfPost(m.posts, id)
	if i < 0 {
		return Post{}, fmt.Errorf("toggling %q: %w", id, ErrPostNotFound)
	}
	m.posts[i].IsFeatured = !m.posts[i].IsFeatured
	m.persistPosts()
	return m.posts[i], nil
}

// persistProfile and persistPosts must be called with mu held. Write failures
// are logged and otherwise ignored; in-memory state stays authoritative.
func (m *Manager) persistProfile() {
	if err := storage.Set(m.store, storage.KeyProfile, m.profile); err != nil {
		slog.Warn("persisting profile failed", "error", err)
	}
}

func (m *Manager) persistPosts() {
	if err := storage.Set(m.store, storage.KeyPosts, m.posts); err != nil {
		slog.Warn("persisting posts failed", "error", err)
	}
}

func deepCopyProfile(p Profile) Profile {
	cp := p
	if p.Experience != nil {
		cp.Experience = append([]ExperienceEntry(nil), p.Experience...)
	}
	if p.Education != nil {
		cp.Education = append([]EducationEntry(nil), p.Education...)
	}
	if p.Skills != nil {
		cp.Skills = append([]string(nil), p.Skills...)
	}
	if p.Languages != nil {
		cp.Languages = append([]string(nil), p.Languages...)
	}
	if p.Certifications != nil {
		cp.Certifications = append([]string(nil), p.Certifications...)
	}
	return cp
}

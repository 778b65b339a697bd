package user

import (
	"context"
	"io"
	"strings"

	"github.com/playday-app/playday-backend/auth"
)

type UserRepository interface {
	Ensure(ctx context.Context, uid, email, name string) error
	Get(ctx context.Context, uid string) (Profile, error)
	UpdateName(ctx context.Context, uid, name string) error
	SetProfilePicture(ctx context.Context, uid, url string) error
}

type Service struct {
	repo  UserRepository
	blobs BlobStore
}

func NewService(repo UserRepository, blobs BlobStore) *Service {
	return &Service{repo: repo, blobs: blobs}
}

// Get returns the caller's profile. Identity issuance happens at the
// provider; the profile row is created on first access, named after the
// email's local part until the user renames it.
func (s *Service) Get(ctx context.Context, ident auth.Identity) (Profile, error) {
	if err := s.ensure(ctx, ident); err != nil {
		return Profile{}, err
	}

	return s.repo.Get(ctx, ident.UID)
}

func (s *Service) Rename(ctx context.Context, ident auth.Identity, name string) (Profile, error) {
	if err := s.ensure(ctx, ident); err != nil {
		return Profile{}, err
	}

	if err := s.repo.UpdateName(ctx, ident.UID, name); err != nil {
		return Profile{}, err
	}

	return s.repo.Get(ctx, ident.UID)
}

// UpdateAvatar uploads the image under the user's uid and stores the
// resulting URL on the profile.
func (s *Service) UpdateAvatar(ctx context.Context, ident auth.Identity, r io.Reader) (Profile, error) {
	if err := s.ensure(ctx, ident); err != nil {
		return Profile{}, err
	}

	blobURL, err := s.blobs.Put(ctx, ident.UID, r)

	if err != nil {
		return Profile{}, err
	}

	if err := s.repo.SetProfilePicture(ctx, ident.UID, blobURL); err != nil {
		return Profile{}, err
	}

	return s.repo.Get(ctx, ident.UID)
}

func (s *Service) ensure(ctx context.Context, ident auth.Identity) error {
	name, _, _ := strings.Cut(ident.Email, "@")

	return s.repo.Ensure(ctx, ident.UID, ident.Email, name)
}

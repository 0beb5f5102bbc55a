// Package firestore implements the profile store on Cloud Firestore. Each
// partition is a top-level collection keyed by the principal ID, mirroring
// how the mobile clients originally stored profiles.
package firestore

import (
	"context"
	"time"

	"wander/internal/domain/entity"
	"wander/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	userCollection     = "users"
	merchantCollection = "merchants"
)

// ProfileStore is a Firestore-backed ProfileRepository.
type ProfileStore struct {
	client *firestore.Client
}

// NewProfileStore creates a Firestore client for the given project.
func NewProfileStore(ctx context.Context, projectID string) (*ProfileStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	return &ProfileStore{client: client}, nil
}

// Close releases the underlying Firestore client.
func (s *ProfileStore) Close() error {
	return s.client.Close()
}

// userProfileDoc is the Firestore document shape of the users collection.
type userProfileDoc struct {
	Email     string    `firestore:"email"`
	Name      string    `firestore:"name"`
	Phone     string    `firestore:"phone"`
	Age       int64     `firestore:"age"`
	Gender    string    `firestore:"gender"`
	Disabled  bool      `firestore:"isDisabled"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// merchantProfileDoc is the Firestore document shape of the merchants collection.
type merchantProfileDoc struct {
	Email               string    `firestore:"email"`
	OwnerName           string    `firestore:"ownerName"`
	Phone               string    `firestore:"phone"`
	BusinessName        string    `firestore:"businessName"`
	BusinessAddress     string    `firestore:"businessAddress"`
	BusinessDescription string    `firestore:"businessDescription"`
	BusinessCategory    string    `firestore:"businessCategory"`
	BusinessWebsite     string    `firestore:"website"`
	BusinessLogoURL     string    `firestore:"logoUrl"`
	CreatedAt           time.Time `firestore:"createdAt"`
}

// Find retrieves the profile for a principal from the partition of the given kind.
func (s *ProfileStore) Find(ctx context.Context, kind entity.Kind, principalID string) (*entity.Profile, error) {
	collection, err := collectionFor(kind)
	if err != nil {
		return nil, err
	}

	snap, err := s.client.Collection(collection).Doc(principalID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s document", collection)
	}

	return s.snapToProfile(kind, principalID, snap)
}

// CreateIfAbsent persists the profile unless its partition already holds a
// document for the principal. Firestore's Create precondition makes the
// first-writer-wins decision server-side.
func (s *ProfileStore) CreateIfAbsent(ctx context.Context, profile *entity.Profile) (bool, *entity.Profile, error) {
	collection, err := collectionFor(profile.Kind)
	if err != nil {
		return false, nil, err
	}

	doc := s.client.Collection(collection).Doc(profile.PrincipalID)

	_, err = doc.Create(ctx, docFromProfile(profile))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			existing, findErr := s.Find(ctx, profile.Kind, profile.PrincipalID)
			if findErr != nil {
				return false, nil, errors.Wrap(findErr, "failed to load profile after losing create race")
			}

			return false, existing, nil
		}

		return false, nil, errors.Wrapf(err, "failed to create %s document", collection)
	}

	return true, profile, nil
}

func collectionFor(kind entity.Kind) (string, error) {
	switch kind {
	case entity.KindUser:
		return userCollection, nil
	case entity.KindMerchant:
		return merchantCollection, nil
	default:
		return "", errors.Errorf("cannot query partition for kind %q", kind)
	}
}

func docFromProfile(profile *entity.Profile) any {
	switch profile.Kind {
	case entity.KindUser:
		return &userProfileDoc{
			Email:     profile.Email,
			Name:      profile.User.Name,
			Phone:     profile.User.Phone,
			Age:       int64(profile.User.Age),
			Gender:    profile.User.Gender,
			Disabled:  profile.User.Disabled,
			CreatedAt: profile.CreatedAt,
		}
	default:
		return &merchantProfileDoc{
			Email:               profile.Email,
			OwnerName:           profile.Merchant.OwnerName,
			Phone:               profile.Merchant.Phone,
			BusinessName:        profile.Merchant.BusinessName,
			BusinessAddress:     profile.Merchant.BusinessAddress,
			BusinessDescription: profile.Merchant.BusinessDescription,
			BusinessCategory:    profile.Merchant.BusinessCategory,
			BusinessWebsite:     profile.Merchant.BusinessWebsite,
			BusinessLogoURL:     profile.Merchant.BusinessLogoURL,
			CreatedAt:           profile.CreatedAt,
		}
	}
}

func (s *ProfileStore) snapToProfile(kind entity.Kind, principalID string, snap *firestore.DocumentSnapshot) (*entity.Profile, error) {
	switch kind {
	case entity.KindUser:
		var doc userProfileDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode user document")
		}

		return &entity.Profile{
			PrincipalID: principalID,
			Kind:        entity.KindUser,
			Email:       doc.Email,
			User: &entity.UserDetails{
				Name:     doc.Name,
				Phone:    doc.Phone,
				Age:      uint(doc.Age),
				Gender:   doc.Gender,
				Disabled: doc.Disabled,
			},
			CreatedAt: doc.CreatedAt,
		}, nil
	default:
		var doc merchantProfileDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode merchant document")
		}

		return &entity.Profile{
			PrincipalID: principalID,
			Kind:        entity.KindMerchant,
			Email:       doc.Email,
			Merchant: &entity.MerchantDetails{
				OwnerName:           doc.OwnerName,
				Phone:               doc.Phone,
				BusinessName:        doc.BusinessName,
				BusinessAddress:     doc.BusinessAddress,
				BusinessDescription: doc.BusinessDescription,
				BusinessCategory:    doc.BusinessCategory,
				BusinessWebsite:     doc.BusinessWebsite,
				BusinessLogoURL:     doc.BusinessLogoURL,
			},
			CreatedAt: doc.CreatedAt,
		}, nil
	}
}

// Package seed loads the built-in catalogue into empty collections.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	appModels "github.com/hosuracademy/academy-api/internal/app/models"
	appRepos "github.com/hosuracademy/academy-api/internal/app/repositories"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
)

// CreateDefaultData seeds courses, gallery items and toppers. A collection is
// only seeded while it is empty, so data edited in the store is never
// overwritten. Failures are collected and returned together.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Courses/Gallery/Toppers)...")

	var finalErr error
	finalErr = errors.Join(finalErr, seedCollection[*appModels.Course](ctx, repos.CourseRepository, DefaultCourses(), lgr))
	finalErr = errors.Join(finalErr, seedCollection[*appModels.GalleryItem](ctx, repos.GalleryRepository, DefaultGallery(), lgr))
	finalErr = errors.Join(finalErr, seedCollection[*appModels.Topper](ctx, repos.TopperRepository, DefaultToppers(), lgr))

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation completed.")
	}
	return finalErr
}

// seedRepository is the part of a document repository seeding needs.
type seedRepository[P any] interface {
	Collection() string
	HasAny(ctx context.Context) (bool, error)
	Create(ctx context.Context, entity P) error
}

func seedCollection[P appModels.Entity](ctx context.Context, repo seedRepository[P], items []P, lgr zerolog.Logger) error {
	collection := repo.Collection()

	exists, err := repo.HasAny(ctx)
	if err != nil {
		lgr.Error().Err(err).Str("collection", collection).Msg("Error checking collection before seeding")
		return fmt.Errorf("seed %s: %w", collection, err)
	}
	if exists {
		lgr.Debug().Str("collection", collection).Msg("Collection already has data, skipping seed")
		return nil
	}

	var finalErr error
	created := 0
	for _, item := range items {
		err := repo.Create(ctx, item)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrResourceAlreadyExists):
			// Another instance seeded the same id concurrently.
		default:
			lgr.Error().Err(err).Str("collection", collection).Str("id", item.GetID()).Msg("Error seeding document")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Str("collection", collection).Int("created", created).Msg("Seeded default documents")
	return finalErr
}
